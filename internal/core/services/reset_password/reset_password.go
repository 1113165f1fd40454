package resetpassword

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Token       user.ResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

// Run updates the password and consumes the token within a single unit of
// work. Consumption is conditional, so of two concurrent resets with the
// same token exactly one commits; the other gets ErrResetTokenDoesNotExist.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer u.Rollback(ctx)

	record, err := u.ResetTokens().GetByToken(ctx, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrResetTokenDoesNotExist) {
		s.log.Info(ctx, "Unknown password reset token.")
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not get password reset token.", logging.Entry("err", err))
		return result, err
	}

	if record.IsExpired(s.now()) {
		// Lazy purge, the expired record is of no further use.
		u.ResetTokens().Consume(ctx, input.Token)
		u.Commit(ctx)
		s.log.Info(
			ctx,
			"Password reset token has expired.",
			logging.Entry("email", record.Email),
			logging.Entry("expiresAt", record.ExpiresAt),
		)
		return result, user.ErrResetTokenExpired
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	err = u.Users().SetPassword(ctx, record.Email, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Could not update user password, user does not exist.",
			logging.Entry("email", record.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("email", record.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = u.ResetTokens().Consume(ctx, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrResetTokenDoesNotExist) {
		// A concurrent reset spent the token first, roll back.
		s.log.Info(ctx, "Password reset token already consumed.", logging.Entry("email", record.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not consume password reset token.", logging.Entry("err", err))
		return result, err
	}

	// One successful reset invalidates every other outstanding token
	// for the email.
	if err := u.ResetTokens().DeleteByEmail(ctx, record.Email); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not delete outstanding password reset tokens.",
			logging.Entry("email", record.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = u.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("email", record.Email),
	)
	return result, nil
}
