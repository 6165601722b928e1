package entity

import "time"

// Límites de longitud de los campos de Cliente. Los aplica la tabla clientes.
const (
	MaxNombre    = 100
	MaxEmail     = 100
	MaxTelefono  = 15
	MaxDireccion = 200
)

// Cliente representa un cliente persistido.
// Activo=false equivale a borrado lógico; la fila nunca se elimina.
type Cliente struct {
	ID            int64
	Nombre        string
	Email         string
	Telefono      *string
	Direccion     *string
	FechaCreacion time.Time
	Activo        bool
}

// NewCliente construye un cliente nuevo: activo y con fecha de creación actual.
// El ID lo asigna el almacenamiento al insertar.
func NewCliente(nombre, email string, telefono, direccion *string) *Cliente {
	return &Cliente{
		Nombre:        nombre,
		Email:         email,
		Telefono:      telefono,
		Direccion:     direccion,
		FechaCreacion: time.Now(),
		Activo:        true,
	}
}

// EstaActivo informa si el cliente es visible para lectura, edición y borrado.
func (c *Cliente) EstaActivo() bool {
	return c != nil && c.Activo
}

// ActualizarDatos sobrescribe los campos editables. ID, FechaCreacion y Activo no cambian.
func (c *Cliente) ActualizarDatos(nombre, email string, telefono, direccion *string) {
	c.Nombre = nombre
	c.Email = email
	c.Telefono = telefono
	c.Direccion = direccion
}

// Desactivar marca el cliente como inactivo. No existe la transición inversa.
func (c *Cliente) Desactivar() {
	c.Activo = false
}
