package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/peoplehub/employee-api/internal/core/domain"
	"github.com/peoplehub/employee-api/internal/core/ports"
)

// EmployeeService enforces the business rules above the repository. It is the
// single place email uniqueness is checked at the application layer; the
// database unique index catches the racy case.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

// SaveEmployee creates a new employee after verifying no existing record uses
// the same email. The repository may still report a duplicate when two
// creates race past the pre-check; both paths surface domain.ErrEmailExists.
func (s *EmployeeService) SaveEmployee(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmailExists, input.Email)
	}

	created, err := s.repo.Insert(ctx, &domain.Employee{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create employee")
		return nil, err
	}

	s.logger.Info().Uint64("id", created.ID).Str("email", created.Email).Msg("employee created")
	return created, nil
}

// GetAllEmployees is a pure pass-through.
func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.FindAll(ctx)
}

// GetEmployeeByID retrieves one employee by id.
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id uint64) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, fmt.Errorf("%w with id: %d", domain.ErrEmployeeNotFound, id)
		}
		return nil, err
	}
	return employee, nil
}

// UpdateEmployeeByID replaces firstName, lastName and email on the record
// identified by the path id. The id itself never changes.
func (s *EmployeeService) UpdateEmployeeByID(ctx context.Context, id uint64, input ports.EmployeeInput) (*domain.Employee, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, fmt.Errorf("%w with id: %d", domain.ErrEmployeeNotFound, id)
		}
		return nil, err
	}

	// The new email must not collide with any other record.
	if input.Email != existing.Email {
		other, err := s.repo.FindByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: %s", domain.ErrEmailExists, input.Email)
		}
	}

	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.Email = input.Email

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Uint64("id", id).Msg("failed to update employee")
		return nil, err
	}

	s.logger.Info().Uint64("id", updated.ID).Msg("employee updated")
	return updated, nil
}

// DeleteEmployee removes the record identified by id.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return fmt.Errorf("%w with id: %d", domain.ErrEmployeeNotFound, id)
		}
		return err
	}

	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Uint64("id", id).Msg("failed to delete employee")
		return err
	}
	if !removed {
		// The row vanished between the existence check and the delete.
		return fmt.Errorf("%w with id: %d", domain.ErrEmployeeNotFound, id)
	}

	s.logger.Info().Uint64("id", id).Msg("employee deleted")
	return nil
}

// GetEmployeeByFirstName is a pure pass-through.
func (s *EmployeeService) GetEmployeeByFirstName(ctx context.Context, firstName string) (*domain.Employee, error) {
	return s.repo.FindByFirstName(ctx, firstName)
}
