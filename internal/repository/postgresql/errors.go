package postgresql

import (
	"errors"
	"fmt"
	"net"

	"github.com/bivekigroup/staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isPgErr reports whether err is a Postgres error with the given code.
func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// wrapStoreErr distinguishes "could not reach the datastore" from
// errors the datastore reported.
func wrapStoreErr(op string, err error) error {
	var netErr net.Error
	var connErr *pgconn.ConnectError
	if errors.As(err, &netErr) || errors.As(err, &connErr) {
		return fmt.Errorf("%s: %w: %v", op, database.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
