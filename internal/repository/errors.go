package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateID        = errors.New("product id already taken")
	ErrReferenceViolation = errors.New("referenced category, manufacturer or vendor does not exist")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// classify maps driver-level failures onto the repository error taxonomy so
// nothing escapes the store boundary as a raw pgx error.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return ErrDuplicateID
		case pgErr.Code == "23503":
			return ErrReferenceViolation
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08": // connection exception class
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
