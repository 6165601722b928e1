// seed_clientes carga clientes desde un CSV usando el servicio de clientes.
//
// Uso: go run ./cmd/seed_clientes [-latin1] clientes.csv
// Columnas: nombre,email,telefono,direccion (cabecera opcional).
// Con -latin1 el archivo se decodifica como ISO-8859-1 (exportaciones de Excel).
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Clientes-api/internal/application/clientes"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Clientes-api/pkg/config"
	"github.com/jhoicas/Clientes-api/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "decodificar el CSV como ISO-8859-1")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed_clientes [-latin1] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := parseCSV(f, *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	res := seed(ctx, clientes.NewService(postgres.NewClienteRepository(pool)), rows, log)
	log.Info().
		Int("creados", res.creados).
		Int("duplicados", res.duplicados).
		Int("invalidos", res.invalidos).
		Int("fallidos", res.fallidos).
		Msg("carga de clientes finalizada")
}

type resultado struct {
	creados    int
	duplicados int
	invalidos  int
	fallidos   int
}

// seed crea cada fila; las inválidas, los duplicados y los errores se registran y no detienen la carga.
func seed(ctx context.Context, svc clientes.ClienteService, rows []dto.ClienteDTO, log *logger.Logger) resultado {
	var res resultado
	for i, in := range rows {
		if err := validarFila(in); err != nil {
			res.invalidos++
			log.Warn().Err(err).Int("fila", i+1).Str("email", in.Email).Msg("fila inválida, se omite")
			continue
		}
		err := svc.Crear(ctx, in)
		switch {
		case err == nil:
			res.creados++
		case errors.Is(err, domain.ErrDuplicate):
			res.duplicados++
			log.Warn().Int("fila", i+1).Str("email", in.Email).Msg("email ya registrado, se omite")
		default:
			res.fallidos++
			log.Error().Err(err).Int("fila", i+1).Str("email", in.Email).Msg("no se pudo crear el cliente")
		}
	}
	return res
}

// validarFila rechaza filas que la tabla clientes no aceptaría (campos obligatorios y longitudes).
func validarFila(in dto.ClienteDTO) error {
	if in.Nombre == "" || in.Email == "" {
		return fmt.Errorf("%w: nombre y email son obligatorios", domain.ErrInvalidInput)
	}
	campos := []struct {
		nombre string
		valor  *string
		max    int
	}{
		{"nombre", &in.Nombre, entity.MaxNombre},
		{"email", &in.Email, entity.MaxEmail},
		{"telefono", in.Telefono, entity.MaxTelefono},
		{"direccion", in.Direccion, entity.MaxDireccion},
	}
	for _, c := range campos {
		if c.valor != nil && utf8.RuneCountInString(*c.valor) > c.max {
			return fmt.Errorf("%w: %s supera %d caracteres", domain.ErrInvalidInput, c.nombre, c.max)
		}
	}
	return nil
}

// parseCSV lee filas nombre,email,telefono,direccion. Telefono y dirección vacíos quedan en nil.
func parseCSV(r io.Reader, latin1 bool) ([]dto.ClienteDTO, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []dto.ClienteDTO
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 && isHeader(rec) {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan al menos nombre y email", line)
		}
		out = append(out, dto.ClienteDTO{
			Nombre:    strings.TrimSpace(rec[0]),
			Email:     strings.TrimSpace(rec[1]),
			Telefono:  optional(rec, 2),
			Direccion: optional(rec, 3),
		})
	}
	return out, nil
}

func isHeader(rec []string) bool {
	return len(rec) >= 2 &&
		strings.EqualFold(strings.TrimSpace(rec[0]), "nombre") &&
		strings.EqualFold(strings.TrimSpace(rec[1]), "email")
}

func optional(rec []string, i int) *string {
	if i >= len(rec) {
		return nil
	}
	s := strings.TrimSpace(rec[i])
	if s == "" {
		return nil
	}
	return &s
}
