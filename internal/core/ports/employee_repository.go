package ports

import (
	"context"

	"github.com/peoplehub/employee-api/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employees. It owns
// storage and nothing else: uniqueness policy lives in the service layer, with
// the database unique index as the backstop.
//
// Lookup methods return domain.ErrEmployeeNotFound when no row matches.
// When several rows match a name lookup, which one is returned is
// unspecified; callers must not rely on a particular winner.
type EmployeeRepository interface {
	// Insert persists a new employee and returns it with its server-assigned
	// id. Fails with domain.ErrEmailExists when the email is already taken.
	Insert(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id uint64) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByFirstAndLastName(ctx context.Context, firstName, lastName string) (*domain.Employee, error)
	FindByFirstName(ctx context.Context, firstName string) (*domain.Employee, error)
	// FindAll returns every employee; order is unspecified.
	FindAll(ctx context.Context) ([]*domain.Employee, error)
	// Update replaces the non-id fields of the row identified by e.ID and
	// returns the persisted employee.
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	// DeleteByID removes the row if present and reports whether a row was
	// removed.
	DeleteByID(ctx context.Context, id uint64) (bool, error)
}
