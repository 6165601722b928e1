package repository

import (
	"context"

	"github.com/jhoicas/Clientes-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	ListActivos(ctx context.Context) ([]*entity.Cliente, error)
	// GetByID devuelve nil, nil si no existe (activo o no).
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	// Create inserta el cliente y completa su ID.
	Create(ctx context.Context, cliente *entity.Cliente) error
	Update(ctx context.Context, cliente *entity.Cliente) error
}
