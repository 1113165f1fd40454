package user

import (
	"context"
	"time"
)

type ResetToken string

type ResetLink string

// ResetTokenRecord is an outstanding password reset token. A token is
// valid while it exists and the current time is not past ExpiresAt;
// consuming it deletes the record.
type ResetTokenRecord struct {
	Token     ResetToken
	Email     Email
	ExpiresAt time.Time
}

func (r ResetTokenRecord) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

type CreateResetTokenInput struct {
	Token     ResetToken
	Email     Email
	ExpiresAt time.Time
}

type ResetTokenRepository interface {
	Create(ctx context.Context, input CreateResetTokenInput) (ResetTokenRecord, error)
	GetByToken(ctx context.Context, token ResetToken) (ResetTokenRecord, error)
	// Consume deletes the token record. It returns ErrResetTokenDoesNotExist
	// if the record is already gone, so exactly one of several concurrent
	// consumers succeeds.
	Consume(ctx context.Context, token ResetToken) error
	DeleteByEmail(ctx context.Context, email Email) error
}

type ResetTokenGenerator interface {
	GenerateResetToken() ResetToken
}

type ResetLinkSender interface {
	SendResetLink(ctx context.Context, to Email, link ResetLink) error
}
