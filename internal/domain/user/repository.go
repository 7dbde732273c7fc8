package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Delete(ctx context.Context, id string) error

	// ListDepartments returns the distinct department_name values across all
	// users, sorted. Departments are not a stored entity.
	ListDepartments(ctx context.Context) ([]string, error)
}
