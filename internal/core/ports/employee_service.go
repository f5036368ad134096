package ports

import (
	"context"

	"github.com/peoplehub/employee-api/internal/core/domain"
)

// EmployeeInput carries the mutable fields of an employee. The id is never
// part of the input: on create it does not exist yet, on update the path id
// is authoritative.
type EmployeeInput struct {
	FirstName string
	LastName  string
	Email     string
}

// EmployeeService defines use-case operations for employees.
type EmployeeService interface {
	// SaveEmployee creates a new employee. Fails with domain.ErrEmailExists
	// when another employee already uses the email.
	SaveEmployee(ctx context.Context, input EmployeeInput) (*domain.Employee, error)
	GetAllEmployees(ctx context.Context) ([]*domain.Employee, error)
	// GetEmployeeByID fails with domain.ErrEmployeeNotFound when absent.
	GetEmployeeByID(ctx context.Context, id uint64) (*domain.Employee, error)
	// UpdateEmployeeByID replaces firstName, lastName and email on the
	// existing record. Fails with domain.ErrEmployeeNotFound when the id is
	// unknown and with domain.ErrEmailExists when the new email collides
	// with a different record.
	UpdateEmployeeByID(ctx context.Context, id uint64, input EmployeeInput) (*domain.Employee, error)
	// DeleteEmployee fails with domain.ErrEmployeeNotFound when the id is
	// unknown.
	DeleteEmployee(ctx context.Context, id uint64) error
	GetEmployeeByFirstName(ctx context.Context, firstName string) (*domain.Employee, error)
}
