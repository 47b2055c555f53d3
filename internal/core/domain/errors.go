package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("access forbidden")
	ErrUnknownRole        = errors.New("unknown role")
	ErrRoleExists         = errors.New("role already exists")

	ErrComplaintNotFound    = errors.New("complaint not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrInvalidToken         = errors.New("invalid token")
)
