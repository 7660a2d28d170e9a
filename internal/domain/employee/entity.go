package employee

import (
	"time"
)

type Employee struct {
	ID            string
	EmployeeID    string
	FullName      string
	Email         string
	Department    string
	DateOfJoining *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
