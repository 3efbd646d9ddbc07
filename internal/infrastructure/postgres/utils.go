package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier lo que los repositorios necesitan de la conexión. *pgxpool.Pool y pgx.Tx lo cumplen.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// wrapQueryError agrega contexto al error; si falta la tabla indica la migración.
func wrapQueryError(op string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s: esquema no inicializado (aplicar migrations/001_hotel_schema.sql): %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isUndefinedTable verifica si un error es undefined_table (42P01).
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01"
	}
	return strings.Contains(err.Error(), "42P01")
}

// hotelArg convierte el filtro opcional en argumento SQL: "" se pasa como NULL.
func hotelArg(hotelID string) any {
	if hotelID == "" {
		return nil
	}
	return hotelID
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
