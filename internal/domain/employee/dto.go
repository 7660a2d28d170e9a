package employee

import (
	"strings"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID    string  `json:"employee_id" validate:"required,max=50"`
	FullName      string  `json:"full_name" validate:"required,max=150"`
	Email         string  `json:"email" validate:"required,email,max=254"`
	Department    string  `json:"department" validate:"required,max=100"`
	DateOfJoining *string `json:"date_of_joining,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Validate trims the request, checks it and escapes the full name in place.
func (r *CreateEmployeeRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Department = strings.TrimSpace(r.Department)
	if r.DateOfJoining != nil && validator.IsEmpty(*r.DateOfJoining) {
		r.DateOfJoining = nil
	}

	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if validator.ContainsHTMLTag(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "HTML tags are not allowed.",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.FullName = validator.SanitizeText(r.FullName)
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Department    string  `json:"department"`
	DateOfJoining *string `json:"date_of_joining"`
}

type EmployeeFilter struct {
	Department *string `json:"department,omitempty"`
}
