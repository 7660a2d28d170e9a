package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var dateOfJoining *string
	if emp.DateOfJoining != nil {
		formatted := emp.DateOfJoining.Format(clock.DateLayout)
		dateOfJoining = &formatted
	}

	return employee.EmployeeResponse{
		ID:            emp.ID,
		EmployeeID:    emp.EmployeeID,
		FullName:      emp.FullName,
		Email:         emp.Email,
		Department:    emp.Department,
		DateOfJoining: dateOfJoining,
	}
}

func duplicateKeyErrors(idTaken, emailTaken bool) error {
	var errs validator.ValidationErrors
	if idTaken {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: employee.ErrEmployeeIDExists.Error(),
		})
	}
	if emailTaken {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: employee.ErrEmailExists.Error(),
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if filter.Department != nil && strings.TrimSpace(*filter.Department) == "" {
		filter.Department = nil
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	results := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		results = append(results, mapEmployeeToResponse(emp))
	}

	return results, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	idTaken, emailTaken, err := s.employeeRepo.ExistsByEmployeeIDOrEmail(ctx, req.EmployeeID, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee uniqueness: %w", err)
	}
	if err := duplicateKeyErrors(idTaken, emailTaken); err != nil {
		return employee.EmployeeResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	newEmployee := employee.Employee{
		ID:         id.String(),
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}

	if req.DateOfJoining != nil {
		joined, ok := validator.IsValidDate(*req.DateOfJoining)
		if !ok {
			return employee.EmployeeResponse{}, validator.ValidationErrors{{
				Field:   "date_of_joining",
				Message: "date_of_joining must be in YYYY-MM-DD format",
			}}
		}
		newEmployee.DateOfJoining = &joined
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		// Lost a race against a concurrent insert of the same key.
		switch {
		case errors.Is(err, employee.ErrEmployeeIDExists):
			return employee.EmployeeResponse{}, duplicateKeyErrors(true, false)
		case errors.Is(err, employee.ErrEmailExists):
			return employee.EmployeeResponse{}, duplicateKeyErrors(false, true)
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.InfoContext(ctx, "Employee created", "id", created.ID, "employee_id", created.EmployeeID)

	return mapEmployeeToResponse(created), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return employee.ErrEmployeeNotFound
	}

	err := s.employeeRepo.Delete(ctx, strings.ToLower(id))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.InfoContext(ctx, "Employee deleted", "id", id)

	return nil
}
