package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/peoplehub/employee-api/internal/core/domain"
)

// uniqueViolation is the SQLSTATE raised when the email unique index rejects
// a write. It is the race backstop behind the service-level pre-check.
const uniqueViolation = "23505"

const (
	insertEmployeeSQL = `
        INSERT INTO employee (first_name, last_name, email)
        VALUES ($1, $2, $3)
        RETURNING id, first_name, last_name, email
    `
	updateEmployeeSQL = `
        UPDATE employee
           SET first_name = $1,
               last_name = $2,
               email = $3
         WHERE id = $4
        RETURNING id, first_name, last_name, email
    `
	deleteEmployeeSQL = `DELETE FROM employee WHERE id = $1`

	selectEmployeeSQL       = `SELECT id, first_name, last_name, email FROM employee`
	selectAllSQL            = selectEmployeeSQL
	selectByIDSQL           = selectEmployeeSQL + ` WHERE id = $1 LIMIT 1`
	selectByEmailSQL        = selectEmployeeSQL + ` WHERE email = $1 LIMIT 1`
	selectByFirstAndLastSQL = selectEmployeeSQL + ` WHERE first_name = $1 AND last_name = $2 LIMIT 1`
	selectByFirstNameSQL    = selectEmployeeSQL + ` WHERE first_name = $1 LIMIT 1`
)

// Queryer is the query surface shared by pgxpool.Pool, pgx.Tx and pgxmock.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EmployeeRepository is the PostgreSQL implementation of employee persistence.
type EmployeeRepository struct {
	db Queryer
}

func NewEmployeeRepository(db Queryer) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Insert persists a new employee; the id is assigned by the database.
func (r *EmployeeRepository) Insert(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	row := r.db.QueryRow(ctx, insertEmployeeSQL, e.FirstName, e.LastName, e.Email)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err, e.Email)
	}
	return created, nil
}

// FindByID retrieves an employee by id.
func (r *EmployeeRepository) FindByID(ctx context.Context, id uint64) (*domain.Employee, error) {
	return scanEmployee(r.db.QueryRow(ctx, selectByIDSQL, id))
}

// FindByEmail retrieves an employee by email (exact, case-sensitive match).
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return scanEmployee(r.db.QueryRow(ctx, selectByEmailSQL, email))
}

// FindByFirstAndLastName retrieves an employee matching both names. With
// several matches the winner is unspecified.
func (r *EmployeeRepository) FindByFirstAndLastName(ctx context.Context, firstName, lastName string) (*domain.Employee, error) {
	return scanEmployee(r.db.QueryRow(ctx, selectByFirstAndLastSQL, firstName, lastName))
}

// FindByFirstName retrieves an employee by first name. With several matches
// the winner is unspecified.
func (r *EmployeeRepository) FindByFirstName(ctx context.Context, firstName string) (*domain.Employee, error) {
	return scanEmployee(r.db.QueryRow(ctx, selectByFirstNameSQL, firstName))
}

// FindAll returns every employee; order is unspecified.
func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	rows, err := r.db.Query(ctx, selectAllSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update replaces the non-id fields of the row identified by e.ID.
func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	row := r.db.QueryRow(ctx, updateEmployeeSQL, e.FirstName, e.LastName, e.Email, e.ID)

	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err, e.Email)
	}
	return updated, nil
}

// DeleteByID removes the row if present and reports whether a row was removed.
func (r *EmployeeRepository) DeleteByID(ctx context.Context, id uint64) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteEmployeeSQL, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

// translatePgError maps storage errors to domain errors: no rows becomes
// not-found, a unique violation becomes the duplicate-email error carrying
// the offending address. Anything else passes through untouched.
func translatePgError(err error, email string) error {
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, domain.ErrEmployeeNotFound) {
		return domain.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrEmailExists, email)
	}

	return err
}
