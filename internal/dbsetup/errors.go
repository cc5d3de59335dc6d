package dbsetup

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrDatabaseOperation marks any failed administrative or schema statement.
var ErrDatabaseOperation = errors.New("database operation failed")

// OpError names the bootstrap step that failed.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	var myErr *mysql.MySQLError
	if errors.As(e.Err, &myErr) {
		return fmt.Sprintf("%s: mysql error %d: %s", e.Op, myErr.Number, myErr.Message)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() []error { return []error{ErrDatabaseOperation, e.Err} }

func opErr(op string, err error) error {
	return &OpError{Op: op, Err: err}
}
