package dto

// ClienteDTO forma de transferencia de un cliente.
// No expone fecha de creación ni el indicador de activo.
type ClienteDTO struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Email     string  `json:"email"`
	Telefono  *string `json:"telefono,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
}
