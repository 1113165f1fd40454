package sendpasswordresettoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
)

type Input struct {
	Email user.Email
}

type Result struct {
	Token user.ResetToken
}

type service struct {
	log                  logging.Logger
	userRepository       user.UserRepository
	resetTokenRepository user.ResetTokenRepository
	resetTokenGenerator  user.ResetTokenGenerator
	resetLinkSender      user.ResetLinkSender
	resetBaseURL         url.URL
	validDuration        time.Duration
	now                  func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	resetTokenRepository user.ResetTokenRepository,
	resetTokenGenerator user.ResetTokenGenerator,
	resetLinkSender user.ResetLinkSender,
	resetBaseURL url.URL,
	validDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if resetTokenRepository == nil {
		panic(e.NewNilArgumentError("resetTokenRepository"))
	}
	if resetTokenGenerator == nil {
		panic(e.NewNilArgumentError("resetTokenGenerator"))
	}
	if resetLinkSender == nil {
		panic(e.NewNilArgumentError("resetLinkSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                  log,
		userRepository:       userRepository,
		resetTokenRepository: resetTokenRepository,
		resetTokenGenerator:  resetTokenGenerator,
		resetLinkSender:      resetLinkSender,
		resetBaseURL:         resetBaseURL,
		validDuration:        validDuration,
		now:                  now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"User not found for password reset.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	token := s.resetTokenGenerator.GenerateResetToken()
	record, err := s.resetTokenRepository.Create(ctx, user.CreateResetTokenInput{
		Token:     token,
		Email:     u.Email,
		ExpiresAt: s.now().Add(s.validDuration),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create password reset token.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := s.resetLinkSender.SendResetLink(ctx, u.Email, s.resetLink(record.Token)); err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset link.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, fmt.Errorf("%w: %v", user.ErrResetLinkDeliveryFailed, err)
	}

	s.log.Info(
		ctx,
		"Password reset link has been sent.",
		logging.Entry("userId", u.ID),
		logging.Entry("expiresAt", record.ExpiresAt),
	)
	return Result{Token: record.Token}, nil
}

func (s *service) resetLink(token user.ResetToken) user.ResetLink {
	link := s.resetBaseURL
	query := link.Query()
	query.Set("token", string(token))
	link.RawQuery = query.Encode()
	return user.ResetLink(link.String())
}
