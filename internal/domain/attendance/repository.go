package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert creates the record for (employeeID, date) or overwrites its status, as one
	// atomic statement keyed on the unique pair. employeeID is the surrogate id.
	Upsert(ctx context.Context, employeeID string, date time.Time, status Status) (Attendance, error)

	// ListByDate returns the records of one day, optionally limited to a department
	ListByDate(ctx context.Context, date time.Time, department *string) ([]Attendance, error)
}
