package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepository struct {
	employees []employee.Employee

	createErr   error
	deleteErr   error
	existsErr   error
	createCalls int
	deletedIDs  []string
	gotFilter   employee.EmployeeFilter
}

func (f *fakeEmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	f.gotFilter = filter
	var out []employee.Employee
	for _, emp := range f.employees {
		if filter.Department == nil || emp.Department == *filter.Department {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeID == employeeID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (bool, bool, error) {
	if f.existsErr != nil {
		return false, false, f.existsErr
	}
	var idTaken, emailTaken bool
	for _, emp := range f.employees {
		idTaken = idTaken || emp.EmployeeID == employeeID
		emailTaken = emailTaken || emp.Email == email
	}
	return idTaken, emailTaken, nil
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.createCalls++
	if f.createErr != nil {
		return employee.Employee{}, f.createErr
	}
	f.employees = append(f.employees, newEmployee)
	return newEmployee, nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, emp := range f.employees {
		if emp.ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func validRequest() employee.CreateEmployeeRequest {
	joined := "2023-10-04"
	return employee.CreateEmployeeRequest{
		EmployeeID:    "E1",
		FullName:      "Alice Smith",
		Email:         "alice@example.com",
		Department:    "IT",
		DateOfJoining: &joined,
	}
}

func TestCreateEmployee_Success(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	resp, err := svc.CreateEmployee(context.Background(), validRequest())
	require.NoError(t, err)

	parsed, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, "E1", resp.EmployeeID)
	assert.Equal(t, "Alice Smith", resp.FullName)
	require.NotNil(t, resp.DateOfJoining)
	assert.Equal(t, "2023-10-04", *resp.DateOfJoining)
	assert.Len(t, repo.employees, 1)
}

func TestCreateEmployee_TrimsAndEscapes(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	req := validRequest()
	req.EmployeeID = "  E1 "
	req.FullName = " Tom & Jerry "
	req.DateOfJoining = nil

	resp, err := svc.CreateEmployee(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "E1", resp.EmployeeID)
	assert.Equal(t, "Tom &amp; Jerry", resp.FullName)
	assert.Nil(t, resp.DateOfJoining)

	req = validRequest()
	req.EmployeeID = "E2"
	req.Email = "conan@example.com"
	req.FullName = `Conan O'Brien "Coco"`
	resp, err = svc.CreateEmployee(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Conan O&#x27;Brien &quot;Coco&quot;", resp.FullName)
}

func TestCreateEmployee_ValidationErrors(t *testing.T) {
	cases := map[string]struct {
		mutate func(*employee.CreateEmployeeRequest)
		field  string
	}{
		"missing employee id": {func(r *employee.CreateEmployeeRequest) { r.EmployeeID = " " }, "employee_id"},
		"missing full name":   {func(r *employee.CreateEmployeeRequest) { r.FullName = "" }, "full_name"},
		"bad email":           {func(r *employee.CreateEmployeeRequest) { r.Email = "not-an-email" }, "email"},
		"missing department":  {func(r *employee.CreateEmployeeRequest) { r.Department = "" }, "department"},
		"html in name":        {func(r *employee.CreateEmployeeRequest) { r.FullName = "<script>x</script>" }, "full_name"},
		"bad join date": {func(r *employee.CreateEmployeeRequest) {
			d := "04/10/2023"
			r.DateOfJoining = &d
		}, "date_of_joining"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &fakeEmployeeRepository{}
			svc := NewEmployeeService(repo)

			req := validRequest()
			c.mutate(&req)
			_, err := svc.CreateEmployee(context.Background(), req)

			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs), "got %v", err)
			assert.Contains(t, errs.ToMap(), c.field)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestCreateEmployee_HTMLTagMessage(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepository{})

	req := validRequest()
	req.FullName = "<b>Alice</b>"
	_, err := svc.CreateEmployee(context.Background(), req)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, "HTML tags are not allowed.", errs.ToMap()["full_name"])
}

func TestCreateEmployee_DuplicateKeys(t *testing.T) {
	repo := &fakeEmployeeRepository{employees: []employee.Employee{
		{ID: "x", EmployeeID: "E1", Email: "alice@example.com"},
	}}
	svc := NewEmployeeService(repo)

	_, err := svc.CreateEmployee(context.Background(), validRequest())

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, map[string]string{
		"employee_id": "employee with this employee id already exists.",
		"email":       "employee with this email already exists.",
	}, errs.ToMap())
	assert.Zero(t, repo.createCalls)
}

func TestCreateEmployee_DuplicateDetectedOnInsert(t *testing.T) {
	repo := &fakeEmployeeRepository{createErr: employee.ErrEmailExists}
	svc := NewEmployeeService(repo)

	_, err := svc.CreateEmployee(context.Background(), validRequest())

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, map[string]string{"email": "employee with this email already exists."}, errs.ToMap())
}

func TestCreateEmployee_RepositoryFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := NewEmployeeService(&fakeEmployeeRepository{existsErr: boom})

	_, err := svc.CreateEmployee(context.Background(), validRequest())
	assert.ErrorIs(t, err, boom)
}

func TestListEmployees(t *testing.T) {
	repo := &fakeEmployeeRepository{employees: []employee.Employee{
		{ID: "1", EmployeeID: "E1", Department: "IT"},
		{ID: "2", EmployeeID: "E2", Department: "HR"},
	}}
	svc := NewEmployeeService(repo)

	all, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	hr := "HR"
	filtered, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{Department: &hr})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "E2", filtered[0].EmployeeID)

	blank := ""
	_, err = svc.ListEmployees(context.Background(), employee.EmployeeFilter{Department: &blank})
	require.NoError(t, err)
	assert.Nil(t, repo.gotFilter.Department)
}

func TestListEmployees_EmptyRosterIsEmptySlice(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepository{})

	results, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestDeleteEmployee(t *testing.T) {
	id := uuid.Must(uuid.NewV7()).String()
	repo := &fakeEmployeeRepository{employees: []employee.Employee{{ID: id, EmployeeID: "E1"}}}
	svc := NewEmployeeService(repo)

	require.NoError(t, svc.DeleteEmployee(context.Background(), id))
	assert.Empty(t, repo.employees)

	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), id), employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee_MalformedIDIsNotFound(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	for _, id := range []string{"", "123", "not-a-uuid"} {
		assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), id), employee.ErrEmployeeNotFound)
	}
	assert.Empty(t, repo.deletedIDs, "malformed ids never reach the repository")
}

func TestDeleteEmployee_RepositoryFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := NewEmployeeService(&fakeEmployeeRepository{deleteErr: boom})

	err := svc.DeleteEmployee(context.Background(), uuid.Must(uuid.NewV7()).String())
	assert.ErrorIs(t, err, boom)
}
