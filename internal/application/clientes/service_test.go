package clientes_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clientes-api/internal/application/clientes"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

// errUnique simula el error que produce el índice único de email.
var errUnique = errors.New("duplicate key value violates unique constraint \"clientes_email_key\"")

type memRepo struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]entity.Cliente
	updates int
	failGet error
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[int64]entity.Cliente{}}
}

func (r *memRepo) ListActivos(_ context.Context) ([]*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Cliente
	for _, c := range r.rows {
		if c.Activo {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGet != nil {
		return nil, r.failGet
	}
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memRepo) Create(_ context.Context, c *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.Email == c.Email {
			return fmt.Errorf("%w: %w", domain.ErrDuplicate, errUnique)
		}
	}
	r.nextID++
	c.ID = r.nextID
	r.rows[c.ID] = *c
	return nil
}

func (r *memRepo) Update(_ context.Context, c *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	r.rows[c.ID] = *c
	return nil
}

func (r *memRepo) stored(id int64) (entity.Cliente, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	return c, ok
}

func strPtr(s string) *string { return &s }

func crearCliente(t *testing.T, svc *clientes.Service, nombre, email string) dto.ClienteDTO {
	t.Helper()
	in := dto.ClienteDTO{Nombre: nombre, Email: email, Telefono: strPtr("3001234567"), Direccion: strPtr("Calle 10 # 5-20")}
	require.NoError(t, svc.Crear(context.Background(), in))
	return in
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_ApareceEnActivos(t *testing.T) {
	svc := clientes.NewService(newMemRepo())
	in := crearCliente(t, svc, "Ana", "ana@example.com")

	list, err := svc.ObtenerActivos(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.NotZero(t, got.ID, "el almacenamiento debe asignar el ID")
	assert.Equal(t, in.Nombre, got.Nombre)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, in.Telefono, got.Telefono)
	assert.Equal(t, in.Direccion, got.Direccion)
}

func TestCrear_IgnoraIDDeEntrada(t *testing.T) {
	repo := newMemRepo()
	svc := clientes.NewService(repo)
	require.NoError(t, svc.Crear(context.Background(), dto.ClienteDTO{ID: 99, Nombre: "Ana", Email: "ana@example.com"}))

	_, ok := repo.stored(99)
	assert.False(t, ok, "el ID de entrada no debe usarse")
	c, ok := repo.stored(1)
	require.True(t, ok)
	assert.True(t, c.Activo)
	assert.False(t, c.FechaCreacion.IsZero())
}

func TestObtenerActivos_SinClientesDevuelveSliceVacio(t *testing.T) {
	svc := clientes.NewService(newMemRepo())
	list, err := svc.ObtenerActivos(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestObtenerPorID_ClienteRecienCreado(t *testing.T) {
	svc := clientes.NewService(newMemRepo())
	in := crearCliente(t, svc, "Ana", "ana@example.com")

	got, err := svc.ObtenerPorID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	in.ID = 1
	assert.Equal(t, in, *got)
}

func TestObtenerPorID_Inexistente(t *testing.T) {
	svc := clientes.NewService(newMemRepo())
	got, err := svc.ObtenerPorID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEliminar_BorradoLogico(t *testing.T) {
	repo := newMemRepo()
	svc := clientes.NewService(repo)
	crearCliente(t, svc, "Ana", "ana@example.com")

	require.NoError(t, svc.Eliminar(context.Background(), 1))

	got, err := svc.ObtenerPorID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, got, "un cliente eliminado no debe ser visible")

	c, ok := repo.stored(1)
	require.True(t, ok, "la fila no debe borrarse físicamente")
	assert.False(t, c.Activo)

	list, err := svc.ObtenerActivos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEliminar_Idempotente(t *testing.T) {
	repo := newMemRepo()
	svc := clientes.NewService(repo)
	crearCliente(t, svc, "Ana", "ana@example.com")

	require.NoError(t, svc.Eliminar(context.Background(), 1))
	despuesDeUno, _ := repo.stored(1)
	updates := repo.updates

	require.NoError(t, svc.Eliminar(context.Background(), 1))
	despuesDeDos, _ := repo.stored(1)

	assert.Equal(t, despuesDeUno, despuesDeDos)
	assert.Equal(t, updates, repo.updates, "el segundo borrado no debe persistir nada")
}

func TestEliminar_InexistenteNoHaceNada(t *testing.T) {
	repo := newMemRepo()
	svc := clientes.NewService(repo)
	require.NoError(t, svc.Eliminar(context.Background(), 5))
	assert.Zero(t, repo.updates)
}

func TestEditar_ClienteActivo(t *testing.T) {
	repo := newMemRepo()
	svc := clientes.NewService(repo)
	crearCliente(t, svc, "Ana", "ana@example.com")
	antes, _ := repo.stored(1)

	err := svc.Editar(context.Background(), dto.ClienteDTO{ID: 1, Nombre: "Ana María", Email: "ana.maria@example.com"})
	require.NoError(t, err)

	c, _ := repo.stored(1)
	assert.Equal(t, "Ana María", c.Nombre)
	assert.Equal(t, "ana.maria@example.com", c.Email)
	assert.Nil(t, c.Telefono, "los campos opcionales también se sobrescriben")
	assert.Nil(t, c.Direccion)
	assert.Equal(t, antes.FechaCreacion, c.FechaCreacion)
	assert.True(t, c.Activo)
}

func TestEditar_InactivoNoMuta(t *testing.T) {
	repo := newMemRepo()
	svc := clientes.NewService(repo)
	crearCliente(t, svc, "Ana", "ana@example.com")
	require.NoError(t, svc.Eliminar(context.Background(), 1))
	antes, _ := repo.stored(1)
	updates := repo.updates

	require.NoError(t, svc.Editar(context.Background(), dto.ClienteDTO{ID: 1, Nombre: "Otro", Email: "otro@example.com"}))

	despues, _ := repo.stored(1)
	assert.Equal(t, antes, despues)
	assert.Equal(t, updates, repo.updates)
}

func TestEditar_InexistenteNoMuta(t *testing.T) {
	repo := newMemRepo()
	svc := clientes.NewService(repo)
	require.NoError(t, svc.Editar(context.Background(), dto.ClienteDTO{ID: 3, Nombre: "X", Email: "x@example.com"}))
	_, ok := repo.stored(3)
	assert.False(t, ok)
	assert.Zero(t, repo.updates)
}

func TestCrear_EmailDuplicadoPropagaErrorDeAlmacenamiento(t *testing.T) {
	svc := clientes.NewService(newMemRepo())
	crearCliente(t, svc, "Ana", "ana@example.com")

	err := svc.Crear(context.Background(), dto.ClienteDTO{Nombre: "Otra Ana", Email: "ana@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnique, "el error del almacenamiento debe llegar sin traducir")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, _ := svc.ObtenerActivos(context.Background())
	assert.Len(t, list, 1)
}

func TestErroresDelRepositorioSePropagan(t *testing.T) {
	repo := newMemRepo()
	repo.failGet = errors.New("conexión perdida")
	svc := clientes.NewService(repo)

	_, err := svc.ObtenerPorID(context.Background(), 1)
	assert.ErrorIs(t, err, repo.failGet)
	assert.ErrorIs(t, svc.Editar(context.Background(), dto.ClienteDTO{ID: 1}), repo.failGet)
	assert.ErrorIs(t, svc.Eliminar(context.Background(), 1), repo.failGet)
}

func TestToClienteDTO_NoExponeMetadatos(t *testing.T) {
	c := entity.NewCliente("Ana", "ana@example.com", nil, strPtr("Calle 1"))
	c.ID = 3
	got := clientes.ToClienteDTO(c)
	assert.Equal(t, dto.ClienteDTO{ID: 3, Nombre: "Ana", Email: "ana@example.com", Direccion: strPtr("Calle 1")}, got)
}
