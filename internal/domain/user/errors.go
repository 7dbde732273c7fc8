package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrCannotDeleteSelf      = errors.New("cannot delete your own account")
	ErrCannotDeleteManager   = errors.New("cannot delete a manager account")
)
