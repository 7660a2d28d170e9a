package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ListAttendance returns the records of the requested day
	ListAttendance(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, error)

	// MarkAttendance upserts today's status for each complete entry, in order
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) ([]AttendanceResponse, error)
}
