package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeIDExists = errors.New("employee with this employee id already exists.")
	ErrEmailExists      = errors.New("employee with this email already exists.")
)
