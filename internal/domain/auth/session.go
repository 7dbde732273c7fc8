package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
)

// Session is the role-tagged view of an authenticated user, resolved once at
// login and carried in the token claims. Handlers branch on the concrete type
// instead of re-checking the role string ad hoc.
type Session interface {
	UserID() string
	Username() string
	Role() user.Role
}

type EmployeeSession struct {
	ID   string
	Name string
}

func (s EmployeeSession) UserID() string   { return s.ID }
func (s EmployeeSession) Username() string { return s.Name }
func (s EmployeeSession) Role() user.Role  { return user.RoleEmployee }

type ManagerSession struct {
	ID   string
	Name string
}

func (s ManagerSession) UserID() string   { return s.ID }
func (s ManagerSession) Username() string { return s.Name }
func (s ManagerSession) Role() user.Role  { return user.RoleManager }

// NewSession builds the session variant for a user's role.
func NewSession(u user.User) Session {
	if u.IsManager() {
		return ManagerSession{ID: u.ID, Name: u.Username}
	}
	return EmployeeSession{ID: u.ID, Name: u.Username}
}

// SessionFromContext rebuilds the session from the request's JWT claims.
func SessionFromContext(ctx context.Context) (Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, ErrNoSession
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	roleStr, ok := claims["role"].(string)
	if !ok || !user.ValidRole(user.Role(roleStr)) {
		return nil, ErrInvalidToken
	}

	if user.Role(roleStr) == user.RoleManager {
		return ManagerSession{ID: userID, Name: username}, nil
	}
	return EmployeeSession{ID: userID, Name: username}, nil
}
