package resetpassword

import (
	"accounts/internal/core/domain/logging"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	loginwithemail "accounts/internal/core/services/log_in_with_email"
	sendpasswordresettoken "accounts/internal/core/services/send_password_reset_token"
	signupwithemail "accounts/internal/core/services/sign_up_with_email"
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestAccountRecoveryFlow walks a full account lifecycle: sign up, log in,
// request a password reset, set a new password, then check that only the
// new password logs in.
func TestAccountRecoveryFlow(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	unitOfWork := uow.NewFakeUnitOfWork()
	userRepo := unitOfWork.Context.UserRepository
	tokenRepo := unitOfWork.Context.ResetTokenRepository
	hasher := user.NewFakePasswordHasher()
	sender := user.NewFakeResetLinkSender()
	now := func() time.Time { return NOW }
	baseURL := url.URL{Scheme: "https", Host: "accounts.example.com", Path: "/reset"}

	signUp := signupwithemail.New(log, userRepo, hasher, now)
	logIn := loginwithemail.New(log, userRepo, hasher)
	sendResetToken := sendpasswordresettoken.New(
		log,
		userRepo,
		tokenRepo,
		user.NewFakeResetTokenGenerator(TOKEN),
		sender,
		baseURL,
		15*time.Minute,
		now,
	)
	resetPassword := New(log, unitOfWork, hasher, now)

	ctx := context.Background()

	// Exercise ---
	_, err := signUp.Run(ctx, signupwithemail.Input{
		FirstName: "Ana",
		LastName:  "Lima",
		Email:     user.Email(EMAIL),
		Password:  user.RawPassword("secret123"),
	})
	require.NoError(t, err)

	_, err = logIn.Run(ctx, loginwithemail.Input{
		Email:    user.Email(EMAIL),
		Password: user.RawPassword("secret123"),
	})
	require.NoError(t, err)

	sendResult, err := sendResetToken.Run(ctx, sendpasswordresettoken.Input{
		Email: user.Email(EMAIL),
	})
	require.NoError(t, err)
	require.Equal(t, 1, sender.SentCount())

	_, err = resetPassword.Run(ctx, Input{
		Token:       sendResult.Token,
		NewPassword: user.RawPassword(NEW_PASSWORD),
	})
	require.NoError(t, err)

	// Verify ---
	_, err = logIn.Run(ctx, loginwithemail.Input{
		Email:    user.Email(EMAIL),
		Password: user.RawPassword("secret123"),
	})
	require.ErrorIs(t, err, user.ErrInvalidCredentials)

	result, err := logIn.Run(ctx, loginwithemail.Input{
		Email:    user.Email(EMAIL),
		Password: user.RawPassword(NEW_PASSWORD),
	})
	require.NoError(t, err)
	require.Equal(t, "Ana", result.User.FirstName)

	// The spent token is gone.
	_, err = resetPassword.Run(ctx, Input{
		Token:       sendResult.Token,
		NewPassword: user.RawPassword("another-password"),
	})
	require.ErrorIs(t, err, user.ErrResetTokenDoesNotExist)
}
