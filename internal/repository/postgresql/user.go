package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
	"github.com/teampulse/workload-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

// GetByID implements user.Repository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, role, department_name, created_at
		FROM users
		WHERE id = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Username, &usr.PasswordHash, &usr.Role, &usr.DepartmentName, &usr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id %s: %w", id, err)
	}
	return usr, nil
}

// GetByUsername implements user.Repository.
func (u *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, role, department_name, created_at
		FROM users
		WHERE username = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, username).Scan(
		&usr.ID, &usr.Username, &usr.PasswordHash, &usr.Role, &usr.DepartmentName, &usr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return usr, nil
}

// ListByRole implements user.Repository. The order is stable so the roster
// snapshot keeps a consistent row order between refreshes.
func (u *userRepositoryImpl) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, role, department_name, created_at
		FROM users
		WHERE role = $1
		ORDER BY created_at, username
	`

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role %s: %w", role, err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var usr user.User
		err := rows.Scan(
			&usr.ID, &usr.Username, &usr.PasswordHash, &usr.Role, &usr.DepartmentName, &usr.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, usr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Create implements user.Repository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (id, username, password_hash, role, department_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, password_hash, role, department_name, created_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.ID, newUser.Username, newUser.PasswordHash, newUser.Role, newUser.DepartmentName,
	).Scan(
		&created.ID, &created.Username, &created.PasswordHash, &created.Role,
		&created.DepartmentName, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUsernameTaken
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// Delete implements user.Repository.
func (u *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, u.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ListDepartments implements user.Repository.
func (u *userRepositoryImpl) ListDepartments(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, u.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT department_name
		FROM users
		ORDER BY department_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		departments = append(departments, name)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}
