package clientes

import (
	"context"

	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

// ClienteService casos de uso CRUD de clientes con borrado lógico.
type ClienteService interface {
	ObtenerActivos(ctx context.Context) ([]dto.ClienteDTO, error)
	ObtenerPorID(ctx context.Context, id int64) (*dto.ClienteDTO, error)
	Crear(ctx context.Context, in dto.ClienteDTO) error
	Editar(ctx context.Context, in dto.ClienteDTO) error
	Eliminar(ctx context.Context, id int64) error
}

var _ ClienteService = (*Service)(nil)

// Service implementación de ClienteService sobre el repositorio.
// Los errores del repositorio se devuelven sin traducir.
type Service struct {
	repo repository.ClienteRepository
}

// NewService construye el servicio.
func NewService(repo repository.ClienteRepository) *Service {
	return &Service{repo: repo}
}

// ObtenerActivos lista los clientes activos.
func (s *Service) ObtenerActivos(ctx context.Context) ([]dto.ClienteDTO, error) {
	list, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteDTO, 0, len(list))
	for _, c := range list {
		out = append(out, ToClienteDTO(c))
	}
	return out, nil
}

// ObtenerPorID devuelve nil, nil si el cliente no existe o está inactivo.
func (s *Service) ObtenerPorID(ctx context.Context, id int64) (*dto.ClienteDTO, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.EstaActivo() {
		return nil, nil
	}
	out := ToClienteDTO(c)
	return &out, nil
}

// Crear persiste un cliente nuevo. El ID de entrada se ignora.
// No valida email duplicado: lo rechaza el índice único de la tabla.
func (s *Service) Crear(ctx context.Context, in dto.ClienteDTO) error {
	c := entity.NewCliente(in.Nombre, in.Email, in.Telefono, in.Direccion)
	return s.repo.Create(ctx, c)
}

// Editar sobrescribe nombre, email, teléfono y dirección.
// Si el cliente no existe o está inactivo no hace nada.
func (s *Service) Editar(ctx context.Context, in dto.ClienteDTO) error {
	c, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if !c.EstaActivo() {
		return nil
	}
	c.ActualizarDatos(in.Nombre, in.Email, in.Telefono, in.Direccion)
	return s.repo.Update(ctx, c)
}

// Eliminar desactiva el cliente (borrado lógico). Idempotente.
func (s *Service) Eliminar(ctx context.Context, id int64) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !c.EstaActivo() {
		return nil
	}
	c.Desactivar()
	return s.repo.Update(ctx, c)
}

// ToClienteDTO proyecta la entidad a la forma de transferencia.
func ToClienteDTO(c *entity.Cliente) dto.ClienteDTO {
	return dto.ClienteDTO{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}
