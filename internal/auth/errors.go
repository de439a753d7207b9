package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("username, password, and role are required")
	ErrMissingLogin       = errors.New("username and password are required")
	ErrInvalidRole        = errors.New("role must be nurse or patient")

	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrMissingSecret = errors.New("token signing secret is not configured")
)
