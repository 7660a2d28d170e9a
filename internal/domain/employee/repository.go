package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	// GetByEmployeeID resolves the business key. Inside a transaction the row is locked
	// FOR SHARE so it cannot be deleted before the transaction ends.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// ExistsByEmployeeIDOrEmail reports which of the two unique keys are already taken.
	ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (idTaken bool, emailTaken bool, err error)

	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// Delete removes the employee; attendance rows go with it through the foreign key cascade.
	Delete(ctx context.Context, id string) error
}
