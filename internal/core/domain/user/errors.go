package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists      = errors.New("email already exists")
	ErrUserDoesNotExist        = errors.New("user does not exist")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrResetTokenDoesNotExist  = errors.New("password reset token does not exist")
	ErrResetTokenExpired       = errors.New("password reset token expired")
	ErrResetLinkDeliveryFailed = errors.New("could not deliver password reset link")
)
