package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrDuplicate signals a unique-constraint violation (favorite pair or
	// track file id already present). Callers translate it to an
	// "already exists" notice rather than a failure.
	ErrDuplicate = errors.New("row already exists")

	// ErrNotFound signals that the referenced row no longer exists.
	ErrNotFound = errors.New("row not found")
)

// isDuplicateEntry reports whether err is a MySQL duplicate-entry error.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
