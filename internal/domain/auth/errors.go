package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrWeakPassword       = errors.New("password too short")
)
