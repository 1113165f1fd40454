package user

import (
	"context"
	"time"
)

type CreateUserInput struct {
	FirstName    string
	LastName     string
	Email        Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email Email) (User, error)
	ReadAll(ctx context.Context) ([]User, error)
	SetPassword(ctx context.Context, email Email, hash PasswordHash) error
}
