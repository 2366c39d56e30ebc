package provider

import (
	"errors"
	"fmt"
)

// QueryError wraps a failed read. Callers log it and degrade to an empty
// result instead of failing the whole page; there is no retry.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func IsQuery(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}
