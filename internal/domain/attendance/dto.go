package attendance

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/validator"
)

// ========================================
// MARK ATTENDANCE
// ========================================

// MarkAttendanceEntry is one employee's status for one day
type MarkAttendanceEntry struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     Status `json:"status"`
}

// IsComplete reports whether all three fields were supplied. Incomplete entries are skipped, not rejected.
func (e MarkAttendanceEntry) IsComplete() bool {
	return e.EmployeeID != "" && e.Date != "" && e.Status != ""
}

// MarkAttendanceRequest holds the entries of one mark call. On the wire it is either
// a single entry object or a list of them.
type MarkAttendanceRequest struct {
	Entries []MarkAttendanceEntry
}

// UnmarshalJSON accepts an object or an array of objects
func (r *MarkAttendanceRequest) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrInvalidPayload
	}

	switch trimmed[0] {
	case '[':
		var entries []MarkAttendanceEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return err
		}
		r.Entries = entries
	case '{':
		var entry MarkAttendanceEntry
		if err := json.Unmarshal(trimmed, &entry); err != nil {
			return err
		}
		r.Entries = []MarkAttendanceEntry{entry}
	default:
		return ErrInvalidPayload
	}
	return nil
}

func (r MarkAttendanceRequest) MarshalJSON() ([]byte, error) {
	if len(r.Entries) == 1 {
		return json.Marshal(r.Entries[0])
	}
	return json.Marshal(r.Entries)
}

func (r *MarkAttendanceRequest) Validate() error {
	if len(r.Entries) == 0 {
		return validator.ValidationErrors{{
			Field:   "entries",
			Message: "at least one attendance entry is required",
		}}
	}
	return nil
}

// ========================================
// LIST ATTENDANCE
// ========================================

// ListAttendanceFilter selects the records of one day. ParsedDate is set by Validate.
type ListAttendanceFilter struct {
	Date       string  `json:"date"` // YYYY-MM-DD, required
	Department *string `json:"department,omitempty"`

	ParsedDate time.Time `json:"-"`
}

func (f *ListAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date parameter is required",
		})
	} else if date, ok := validator.ParseLenientDate(f.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		f.ParsedDate = date
	}

	if f.Department != nil && validator.IsEmpty(*f.Department) {
		f.Department = nil
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceResponse is a record as returned to clients, keyed by the business employee id
type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       Status `json:"status"`
}
