package dashboard

import "github.com/shopspring/decimal"

// DashboardFilter scopes the roster; nil Department means the whole company
type DashboardFilter struct {
	Department *string `json:"department,omitempty"`
}

// Percentage is a value already rounded to one decimal place. It is always encoded with that
// decimal, so 50 goes out as 50.0.
type Percentage float64

func (p Percentage) MarshalJSON() ([]byte, error) {
	return []byte(decimal.NewFromFloat(float64(p)).StringFixed(1)), nil
}

// DashboardResponse is the same-day snapshot served by GET /dashboard
type DashboardResponse struct {
	Date                 string     `json:"date"` // Format: "YYYY-MM-DD"
	TotalEmployees       int64      `json:"total_employees"`
	PresentToday         int64      `json:"present_today"`
	AbsentToday          int64      `json:"absent_today"`
	PendingAttendance    int64      `json:"pending_attendance"` // employees without a record today
	AttendancePercentage Percentage `json:"attendance_percentage"`
	LastUpdated          string     `json:"last_updated"` // Format: "YYYY-MM-DD HH:MM:SS"
}
