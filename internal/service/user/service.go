package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teampulse/workload-backend-go/internal/domain/auth"
	"github.com/teampulse/workload-backend-go/internal/domain/report"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
	"github.com/teampulse/workload-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type userServiceImpl struct {
	tx         database.Transactor
	userRepo   user.Repository
	reportRepo report.Repository
}

func NewUserService(tx database.Transactor, userRepo user.Repository, reportRepo report.Repository) user.Service {
	return &userServiceImpl{
		tx:         tx,
		userRepo:   userRepo,
		reportRepo: reportRepo,
	}
}

// AddEmployee implements user.Service. A duplicate username surfaces as
// user.ErrUsernameTaken for the handler to report.
func (s *userServiceImpl) AddEmployee(ctx context.Context, req user.CreateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		PasswordHash:   string(hash),
		Role:           user.RoleEmployee,
		DepartmentName: req.DepartmentName,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// AddDepartment implements user.Service. Departments only exist as distinct
// department_name values, so a new one is introduced by inserting a placeholder
// employee carrying the name. A username collision on this path means the
// placeholder already exists and is deliberately ignored.
func (s *userServiceImpl) AddDepartment(ctx context.Context, req user.CreateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// The placeholder never logs in; give it an unguessable password anyway.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	_, err = s.userRepo.Create(ctx, user.User{
		ID:             uuid.NewString(),
		Username:       fmt.Sprintf("dept_%d", time.Now().UnixMilli()),
		PasswordHash:   string(hash),
		Role:           user.RoleEmployee,
		DepartmentName: req.Name,
	})
	if err != nil && !errors.Is(err, user.ErrUsernameTaken) {
		return err
	}
	return nil
}

// DeleteEmployee implements user.Service. The user's reports go with them, in
// one transaction, so a concurrent roster load never sees an orphan report.
func (s *userServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return err
	}
	if session.UserID() == id {
		return user.ErrCannotDeleteSelf
	}

	target, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.IsManager() {
		return user.ErrCannotDeleteManager
	}

	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.reportRepo.DeleteByUserID(txCtx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(txCtx, id)
	})
}

// ListDepartments implements user.Service.
func (s *userServiceImpl) ListDepartments(ctx context.Context) ([]string, error) {
	return s.userRepo.ListDepartments(ctx)
}
