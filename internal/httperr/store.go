package httperr

import (
	"errors"

	"gorm.io/gorm"
)

// FromStore classifies a repository error: a missing row becomes a 404 with
// the given code, anything else a dependency failure.
func FromStore(err error, notFoundCode, notFoundMessage string) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound(notFoundCode, notFoundMessage)
	}
	return ErrDependency("store_failure", err)
}

// Store wraps an unexpected repository error.
func Store(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return ErrDependency("store_failure", err)
}
