package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrInvalidStatus  = errors.New("status must be one of: Present, Absent")
	ErrInvalidPayload = errors.New("request body must be an attendance entry or a list of entries")
	ErrDateNotToday   = errors.New("attendance can only be marked for today")
)

// DateNotTodayError rejects a mark for any day other than the current one.
type DateNotTodayError struct {
	Today string
}

func (e *DateNotTodayError) Error() string {
	return fmt.Sprintf("You can only mark attendance for today (%s). Past or future updates are restricted.", e.Today)
}

func (e *DateNotTodayError) Unwrap() error {
	return ErrDateNotToday
}
