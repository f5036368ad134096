package domain

import (
	"errors"
	"fmt"
)

// Domain errors surfaced by the service and repository layers. The HTTP layer
// is the sole translator to status codes.
var (
	// ErrEmployeeNotFound maps to 404.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrEmailExists maps to 409. Raised by the service pre-check and by the
	// repository when the unique index rejects a racing insert.
	ErrEmailExists = errors.New("e-mail already exists")
)

// Employee is the single domain entity. ID is assigned by the database at
// insert time and never mutated afterwards; Email is globally unique
// (case-sensitive).
type Employee struct {
	ID        uint64
	FirstName string
	LastName  string
	Email     string
}

// Equal reports whether both employees agree on all four fields.
func (e Employee) Equal(other Employee) bool {
	return e == other
}

// String renders a diagnostic representation. Not part of any wire contract.
func (e Employee) String() string {
	return fmt.Sprintf("Employee{id: %d, firstName: %q, lastName: %q, email: %q}",
		e.ID, e.FirstName, e.LastName, e.Email)
}
