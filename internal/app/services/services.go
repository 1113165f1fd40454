package services

import (
	"accounts/internal/app/deps"
	"accounts/internal/core/services"
	listusers "accounts/internal/core/services/list_users"
	loginwithemail "accounts/internal/core/services/log_in_with_email"
	resetpassword "accounts/internal/core/services/reset_password"
	sendpasswordresettoken "accounts/internal/core/services/send_password_reset_token"
	signupwithemail "accounts/internal/core/services/sign_up_with_email"
)

type Services struct {
	SignUpWithEmail        services.Service[signupwithemail.Input, signupwithemail.Result]
	LogInWithEmail         services.Service[loginwithemail.Input, loginwithemail.Result]
	ListUsers              services.Service[listusers.Input, listusers.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogInWithEmail = loginwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
	)
	s.ListUsers = listusers.New(
		deps.Logger,
		deps.UserRepository,
	)
	s.SendPasswordResetToken = sendpasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetTokenRepository,
		deps.ResetTokenGenerator,
		deps.ResetLinkSender,
		deps.Config.PasswordResetBaseURL,
		deps.Config.PasswordResetValidDuration,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)

	return s
}
