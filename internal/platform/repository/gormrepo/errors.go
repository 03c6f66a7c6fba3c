package gormrepo

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	"blog/internal/platform/repository"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const constraintFailed = "constraint failed: "

func translate(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &repository.ConstraintViolationError{Err: err}
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return &repository.ConstraintViolationError{Constraint: constraintName(sqliteErr), Err: err}
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr:
			return repository.Unavailable(op, err)
		}
		return wrap(op, err)
	}

	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded):
		return repository.Unavailable(op, err)
	}
	return wrap(op, err)
}

// constraintName extracts "articles.title" from "UNIQUE constraint failed: articles.title".
func constraintName(err sqlite3.Error) string {
	msg := err.Error()
	if i := strings.Index(msg, constraintFailed); i >= 0 {
		return msg[i+len(constraintFailed):]
	}
	return ""
}
