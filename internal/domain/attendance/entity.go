package attendance

import (
	"fmt"
	"strings"
	"time"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeCode string // business employee_id of the owning employee
	EmployeeName string
}

// Status is the closed set of attendance states. The zero value means "not provided".
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// ParseStatus accepts the two known statuses, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present":
		return StatusPresent, nil
	case "absent":
		return StatusAbsent, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalText rejects unknown statuses at decode time. An empty value stays empty.
func (s *Status) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = ""
		return nil
	}
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
