package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrConflict reports a uniqueness or referential-integrity rejection.
	ErrConflict = errors.New("conflict")
	// ErrNotFound reports that no row matches the requested id.
	ErrNotFound = errors.New("not found")
)

// isConstraintViolation reports whether the database engine rejected a write
// because of a unique index or foreign key.
func isConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated)
}
