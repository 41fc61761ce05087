package reference

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a lookup key is not in the catalog
type NotFoundError struct {
	Kind string // e.g. "vendor", "size band", "industry", "metric"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
