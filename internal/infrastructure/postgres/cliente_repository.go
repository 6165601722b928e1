package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `id, nombre, email, telefono, direccion, fecha_creacion, activo`

// ClienteRepo implementación de ClienteRepository sobre la tabla clientes (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// ListActivos lista los clientes con activo = true.
func (r *ClienteRepo) ListActivos(ctx context.Context) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE activo = TRUE ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return list, nil
}

// GetByID obtiene un cliente por ID sin filtrar por activo. nil, nil si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE id = $1`
	c, err := scanCliente(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// Create inserta el cliente y asigna el ID generado por la base de datos.
func (r *ClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (nombre, email, telefono, direccion, fecha_creacion, activo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		cliente.Nombre, cliente.Email, cliente.Telefono, cliente.Direccion,
		cliente.FechaCreacion, cliente.Activo,
	).Scan(&cliente.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return duplicateError(err)
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// Update persiste los campos editables y el indicador de activo. Sin control de concurrencia.
func (r *ClienteRepo) Update(ctx context.Context, cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, email = $3, telefono = $4, direccion = $5, activo = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		cliente.ID, cliente.Nombre, cliente.Email, cliente.Telefono, cliente.Direccion, cliente.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return duplicateError(err)
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	if err := row.Scan(&c.ID, &c.Nombre, &c.Email, &c.Telefono, &c.Direccion, &c.FechaCreacion, &c.Activo); err != nil {
		return nil, err
	}
	return &c, nil
}
