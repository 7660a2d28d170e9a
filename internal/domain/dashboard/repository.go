package dashboard

import (
	"context"
	"time"
)

// AttendanceStats combines present/absent counts of one day
type AttendanceStats struct {
	Present int64
	Absent  int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// CountEmployees returns the roster size, optionally for one department
	CountEmployees(ctx context.Context, department *string) (int64, error)

	// GetAttendanceStatsByDay returns present/absent counts for a day in single query,
	// counting only employees of the department when one is given
	GetAttendanceStatsByDay(ctx context.Context, date time.Time, department *string) (*AttendanceStats, error)
}
