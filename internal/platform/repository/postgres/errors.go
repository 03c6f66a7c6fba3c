package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"blog/internal/platform/repository"

	"github.com/lib/pq"
)

// SQLSTATE classes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	classConnectionException   pq.ErrorClass = "08"
	classIntegrityViolation    pq.ErrorClass = "23"
	classInsufficientResources pq.ErrorClass = "53"

	// 57P01 admin_shutdown, 57P02 crash_shutdown, 57P03 cannot_connect_now
	shutdownPrefix = "57P0"
)

// translate maps driver failures onto the repository error taxonomy.
func translate(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case classIntegrityViolation:
			return &repository.ConstraintViolationError{Constraint: pqErr.Constraint, Err: err}
		case classConnectionException, classInsufficientResources:
			return repository.Unavailable(op, err)
		}
		if strings.HasPrefix(string(pqErr.Code), shutdownPrefix) {
			return repository.Unavailable(op, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if isConnectivity(err) {
		return repository.Unavailable(op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isConnectivity(err error) bool {
	var netErr net.Error
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &netErr):
		return true
	default:
		return false
	}
}
