package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation = "23505"

	employeesEmployeeIDKey = "employees_employee_id_key"
	employeesEmailKey      = "employees_email_key"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department,
		&emp.DateOfJoining, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, full_name, email, department, date_of_joining, created_at, updated_at
		FROM employees
		WHERE ($1::text IS NULL OR department = $1)
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, filter.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, full_name, email, department, date_of_joining, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
		FOR SHARE
	`

	found, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by employee_id: %w", err)
	}

	return found, nil
}

// ExistsByEmployeeIDOrEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (bool, bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT
			EXISTS(SELECT 1 FROM employees WHERE employee_id = $1),
			EXISTS(SELECT 1 FROM employees WHERE email = $2)
	`

	var idTaken, emailTaken bool
	if err := q.QueryRow(ctx, query, employeeID, email).Scan(&idTaken, &emailTaken); err != nil {
		return false, false, fmt.Errorf("failed to check employee uniqueness: %w", err)
	}

	return idTaken, emailTaken, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, employee_id, full_name, email, department, date_of_joining)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, full_name, email, department, date_of_joining, created_at, updated_at
	`

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.EmployeeID, newEmployee.FullName,
		newEmployee.Email, newEmployee.Department, newEmployee.DateOfJoining,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case employeesEmployeeIDKey:
				return employee.Employee{}, employee.ErrEmployeeIDExists
			case employeesEmailKey:
				return employee.Employee{}, employee.ErrEmailExists
			}
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
