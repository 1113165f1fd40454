package app

import (
	"accounts/internal/app/deps"
	"accounts/internal/app/services"
	loginwithemail "accounts/internal/http/handlers/auth/log_in_with_email"
	resetpassword "accounts/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "accounts/internal/http/handlers/auth/send_password_reset_token"
	signupwithemail "accounts/internal/http/handlers/auth/sign_up_with_email"
	listusers "accounts/internal/http/handlers/users/list_users"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/send",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Mount("/auth", authRouter)
	router.Method(http.MethodGet, "/users", listusers.New(s.ListUsers))

	return &http.Server{
		Handler:           router,
		Addr:              deps.Config.Address,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       5 * time.Second,
	}
}
