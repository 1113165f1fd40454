package user

import (
	e "accounts/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type Email string

type User struct {
	ID           ID
	FirstName    string
	LastName     string
	Email        Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}
