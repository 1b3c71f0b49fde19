package salon

import (
	"errors"
	"fmt"
)

var (
	ErrSalonNotFound = errors.New("salon not found")
	ErrNotOwner      = errors.New("only the salon owner can do this")
)

// ValidationError reports a rejected part of a salon payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
