package loginwithemail

import (
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const EMAIL = "ana@example.com"
const PASSWORD = "secret123"

type suite struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	hasher   *user.FakePasswordHasher
}

func setupSuite(t *testing.T) *suite {
	t.Helper()

	s := &suite{
		log:      logging.NewFakeLogger(),
		userRepo: user.NewFakeUserRepository(),
		hasher:   user.NewFakePasswordHasher(),
	}
	hash, err := s.hasher.HashPassword(user.RawPassword(PASSWORD))
	require.NoError(t, err)
	s.userRepo.Users = []user.User{
		{ID: 1, FirstName: "Ana", LastName: "Lima", Email: user.Email(EMAIL), PasswordHash: hash},
	}
	return s
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.hasher)
}

func TestLogInSuccess(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Email:    user.Email(EMAIL),
		Password: user.RawPassword(PASSWORD),
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Ana", result.User.FirstName)
	require.Equal(t, user.ID(1), result.User.ID)
}

func TestLogInInvalidCredentials(t *testing.T) {
	cases := []struct {
		id       string
		email    string
		password string
	}{
		{id: "wrong password", email: EMAIL, password: "wrong-password"},
		{id: "unknown email", email: "unknown@example.com", password: PASSWORD},
		{id: "both wrong", email: "unknown@example.com", password: "wrong-password"},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite(t)
			service := suite.createService()

			// Exercise ---
			_, err := service.Run(context.Background(), Input{
				Email:    user.Email(testcase.email),
				Password: user.RawPassword(testcase.password),
			})

			// Verify ---
			// Unknown email and wrong password must be indistinguishable.
			require.ErrorIs(t, err, user.ErrInvalidCredentials)
		})
	}
}
