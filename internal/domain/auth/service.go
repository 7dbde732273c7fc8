package auth

import "context"

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Logout revokes the presented access token and drops the session's
	// dashboard filter state.
	Logout(ctx context.Context, token string) error
}
