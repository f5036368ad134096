package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/peoplehub/employee-api/internal/core/domain"
	"github.com/peoplehub/employee-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubEmployeeRepo struct {
	byID   map[uint64]*domain.Employee
	nextID uint64
	// if set, Insert returns this error
	insertErr error
	// if set, FindAll returns this error
	findAllErr error
	// when true, FindByEmail always reports not-found, simulating a racing
	// insert that the service pre-check cannot see
	emailLookupMiss bool
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{byID: make(map[uint64]*domain.Employee)}
}

func (r *stubEmployeeRepo) Insert(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	// Mirrors the database unique index.
	for _, existing := range r.byID {
		if existing.Email == e.Email {
			return nil, fmt.Errorf("%w: %s", domain.ErrEmailExists, e.Email)
		}
	}
	r.nextID++
	clone := *e
	clone.ID = r.nextID
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id uint64) (*domain.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	if r.emailLookupMiss {
		return nil, domain.ErrEmployeeNotFound
	}
	for _, e := range r.byID {
		if e.Email == email {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindByFirstAndLastName(_ context.Context, firstName, lastName string) (*domain.Employee, error) {
	for _, e := range r.byID {
		if e.FirstName == firstName && e.LastName == lastName {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindByFirstName(_ context.Context, firstName string) (*domain.Employee, error) {
	for _, e := range r.byID {
		if e.FirstName == firstName {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindAll(_ context.Context) ([]*domain.Employee, error) {
	if r.findAllErr != nil {
		return nil, r.findAllErr
	}
	out := make([]*domain.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	if _, ok := r.byID[e.ID]; !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	r.byID[e.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEmployeeRepo) DeleteByID(_ context.Context, id uint64) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func newTestService(repo ports.EmployeeRepository) *EmployeeService {
	return NewEmployeeService(repo, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// SaveEmployee
// ---------------------------------------------------------------------------

func TestSaveEmployee_AssignsIDAndPersists(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestService(repo)

	created, err := svc.SaveEmployee(context.Background(), ports.EmployeeInput{
		FirstName: "Ramesh",
		LastName:  "Fadatare",
		Email:     "ramesh@example.com",
	})
	if err != nil {
		t.Fatalf("SaveEmployee error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected a server-assigned id, got 0")
	}

	fetched, err := svc.GetEmployeeByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetEmployeeByID error: %v", err)
	}
	if !fetched.Equal(*created) {
		t.Fatalf("fetched %v, want %v", fetched, created)
	}
}

func TestSaveEmployee_DuplicateEmail(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestService(repo)

	input := ports.EmployeeInput{FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh@example.com"}
	if _, err := svc.SaveEmployee(context.Background(), input); err != nil {
		t.Fatalf("first SaveEmployee error: %v", err)
	}

	input.FirstName = "Suresh"
	_, err := svc.SaveEmployee(context.Background(), input)
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if !strings.Contains(err.Error(), "ramesh@example.com") {
		t.Fatalf("error should name the email, got %q", err)
	}

	all, err := svc.GetAllEmployees(context.Background())
	if err != nil {
		t.Fatalf("GetAllEmployees error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 stored employee, got %d", len(all))
	}
}

func TestSaveEmployee_DuplicateCaughtByIndex(t *testing.T) {
	// Two creates racing with the same email may both pass the pre-check;
	// the unique index then rejects the late one with the same error kind.
	repo := newStubEmployeeRepo()
	svc := newTestService(repo)

	input := ports.EmployeeInput{FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh@example.com"}
	if _, err := svc.SaveEmployee(context.Background(), input); err != nil {
		t.Fatalf("first SaveEmployee error: %v", err)
	}

	repo.emailLookupMiss = true
	_, err := svc.SaveEmployee(context.Background(), input)
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists from the index backstop, got %v", err)
	}
}

func TestSaveEmployee_RepositoryFailure(t *testing.T) {
	repo := newStubEmployeeRepo()
	repo.insertErr = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.SaveEmployee(context.Background(), ports.EmployeeInput{
		FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh@example.com",
	})
	if err == nil || errors.Is(err, domain.ErrEmailExists) || errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected the storage error untouched, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetEmployeeByID / GetAllEmployees / GetEmployeeByFirstName
// ---------------------------------------------------------------------------

func TestGetEmployeeByID_NotFound(t *testing.T) {
	svc := newTestService(newStubEmployeeRepo())

	_, err := svc.GetEmployeeByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "with id: 42") {
		t.Fatalf("error should name the id, got %q", err)
	}
}

func TestGetAllEmployees_PassThrough(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestService(repo)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if _, err := svc.SaveEmployee(context.Background(), ports.EmployeeInput{
			FirstName: "Ramesh", LastName: "Fadatare", Email: email,
		}); err != nil {
			t.Fatalf("SaveEmployee error: %v", err)
		}
	}

	all, err := svc.GetAllEmployees(context.Background())
	if err != nil {
		t.Fatalf("GetAllEmployees error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(all))
	}

	emails := make(map[string]struct{}, len(all))
	for _, e := range all {
		emails[e.Email] = struct{}{}
	}
	if len(emails) != len(all) {
		t.Fatalf("email uniqueness violated: %v", all)
	}
}

func TestGetEmployeeByFirstName_PassThrough(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestService(repo)

	created, err := svc.SaveEmployee(context.Background(), ports.EmployeeInput{
		FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh@example.com",
	})
	if err != nil {
		t.Fatalf("SaveEmployee error: %v", err)
	}

	found, err := svc.GetEmployeeByFirstName(context.Background(), "Ramesh")
	if err != nil {
		t.Fatalf("GetEmployeeByFirstName error: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected employee %d, got %d", created.ID, found.ID)
	}

	if _, err := svc.GetEmployeeByFirstName(context.Background(), "Suresh"); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateEmployeeByID
// ---------------------------------------------------------------------------

func TestUpdateEmployeeByID_ReplacesFields(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestService(repo)

	created, err := svc.SaveEmployee(context.Background(), ports.EmployeeInput{
		FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh@example.com",
	})
	if err != nil {
		t.Fatalf("SaveEmployee error: %v", err)
	}

	updated, err := svc.UpdateEmployeeByID(context.Background(), created.ID, ports.EmployeeInput{
		FirstName: "Ram", LastName: "Jadhav", Email: "ram@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateEmployeeByID error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id must never change: got %d, want %d", updated.ID, created.ID)
	}
	if updated.FirstName != "Ram" || updated.LastName != "Jadhav" || updated.Email != "ram@example.com" {
		t.Fatalf("fields not replaced: %v", updated)
	}
}

func TestUpdateEmployeeByID_NotFound(t *testing.T) {
	svc := newTestService(newStubEmployeeRepo())

	_, err := svc.UpdateEmployeeByID(context.Background(), 1, ports.EmployeeInput{
		FirstName: "Ram", LastName: "Jadhav", Email: "ram@example.com",
	})
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestUpdateEmployeeByID_EmailCollision(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestService(repo)

	first, err := svc.SaveEmployee(context.Background(), ports.EmployeeInput{
		FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh@example.com",
	})
	if err != nil {
		t.Fatalf("SaveEmployee error: %v", err)
	}
	if _, err := svc.SaveEmployee(context.Background(), ports.EmployeeInput{
		FirstName: "Suresh", LastName: "Jadhav", Email: "suresh@example.com",
	}); err != nil {
		t.Fatalf("SaveEmployee error: %v", err)
	}

	_, err = svc.UpdateEmployeeByID(context.Background(), first.ID, ports.EmployeeInput{
		FirstName: "Ramesh", LastName: "Fadatare", Email: "suresh@example.com",
	})
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUpdateEmployeeByID_KeepsOwnEmail(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestService(repo)

	created, err := svc.SaveEmployee(context.Background(), ports.EmployeeInput{
		FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh@example.com",
	})
	if err != nil {
		t.Fatalf("SaveEmployee error: %v", err)
	}

	// Re-submitting the record's own email is not a collision.
	updated, err := svc.UpdateEmployeeByID(context.Background(), created.ID, ports.EmployeeInput{
		FirstName: "Ram", LastName: "Fadatare", Email: "ramesh@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateEmployeeByID error: %v", err)
	}
	if updated.FirstName != "Ram" {
		t.Fatalf("fields not replaced: %v", updated)
	}
}

// ---------------------------------------------------------------------------
// DeleteEmployee
// ---------------------------------------------------------------------------

func TestDeleteEmployee(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestService(repo)

	created, err := svc.SaveEmployee(context.Background(), ports.EmployeeInput{
		FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh@example.com",
	})
	if err != nil {
		t.Fatalf("SaveEmployee error: %v", err)
	}

	if err := svc.DeleteEmployee(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteEmployee error: %v", err)
	}

	if _, err := svc.GetEmployeeByID(context.Background(), created.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound after delete, got %v", err)
	}

	// A second delete reports not-found.
	if err := svc.DeleteEmployee(context.Background(), created.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound on second delete, got %v", err)
	}
}
