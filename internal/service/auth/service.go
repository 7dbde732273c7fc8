package auth

import (
	"context"
	"errors"

	"github.com/teampulse/workload-backend-go/internal/domain/auth"
	"github.com/teampulse/workload-backend-go/internal/domain/roster"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
	"github.com/teampulse/workload-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
	rosterSvc  roster.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service, rosterSvc roster.Service) auth.Service {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		rosterSvc:  rosterSvc,
	}
}

// Login implements auth.Service. The session variant (employee vs manager) is
// resolved here, once, and carried in the token's role claim.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	usr, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a bad password so usernames cannot be probed.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	session := auth.NewSession(usr)
	token, expiresAt, err := s.jwtService.GenerateAccessToken(
		session.UserID(), session.Username(), session.Role(), usr.DepartmentName,
	)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user.ToResponse(usr),
	}, nil
}

// Logout implements auth.Service.
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	s.jwtService.RevokeToken(token)
	// Filter state is session-local; it must not leak into the next login.
	s.rosterSvc.ResetFilters(session.UserID())
	return nil
}
