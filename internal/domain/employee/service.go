package employee

import (
	"context"
)

// EmployeeService defines business logic for the roster
type EmployeeService interface {
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)

	// CreateEmployee validates, sanitizes and stores a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee hard deletes an employee together with its attendance records
	DeleteEmployee(ctx context.Context, id string) error
}
