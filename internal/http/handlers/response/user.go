package response

import (
	"accounts/internal/core/domain/user"
)

// User is the client-facing user representation. The password hash is
// deliberately absent.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func NewUser(u user.User) User {
	return User{
		ID:        int64(u.ID),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     string(u.Email),
	}
}

func NewUsers(us []user.User) []User {
	users := make([]User, 0, len(us))
	for _, u := range us {
		users = append(users, NewUser(u))
	}
	return users
}
