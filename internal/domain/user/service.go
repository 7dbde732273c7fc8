package user

import "context"

// Service covers roster management: the manager's add-employee, add-department and
// delete-employee operations plus the department listing the filter panel needs.
type Service interface {
	AddEmployee(ctx context.Context, req CreateEmployeeRequest) (UserResponse, error)

	// AddDepartment registers a department name. Departments are not a stored
	// entity; they exist as the distinct department_name values across users, so
	// this inserts a placeholder employee carrying the new name.
	AddDepartment(ctx context.Context, req CreateDepartmentRequest) error

	// DeleteEmployee removes an employee together with all their workload reports.
	DeleteEmployee(ctx context.Context, id string) error

	ListDepartments(ctx context.Context) ([]string, error)
}
