package resettokengenerator

import (
	"accounts/internal/core/domain/user"

	"github.com/google/uuid"
)

// UUID generates reset token values as random (version 4) UUIDs, i.e.
// 128 bits from a cryptographically strong source.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateResetToken() user.ResetToken {
	return user.ResetToken(uuid.NewString())
}
