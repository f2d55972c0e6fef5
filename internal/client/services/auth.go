// Package services contains the application services behind the screens:
// authentication against the remote API with local session persistence, and
// profile fetch/update.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophprofile/internal/client/api"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/client/repositories/session"
	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

const (
	MsgLoginSuccess    = "User has been logged in successfully!"
	MsgRegisterSuccess = "User has been registered successfully!"

	msgInvalidCredentials = "Invalid credentials"
	msgInvalidFormat      = "Invalid email/username or password format"
	msgLoginFailed        = "Login failed. Please try again."
)

// AuthService defines the authentication operations of the client.
//
//   - Login validates the credentials, authenticates and stores the session.
//   - Register validates the input, creates the account and stores a token
//     when the server hands one out.
//   - Logout drops the stored session.
//   - Session returns the stored session or session.ErrNoSession.
//
// Login and Register return the success message to show.
type AuthService interface {
	Login(ctx context.Context, c models.Credentials) (string, error)
	Register(ctx context.Context, r models.RegistrationInput) (string, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (session.Session, error)
}

type authService struct {
	client   api.Client
	sessions session.Repository
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the API client and the
// session store.
func NewAuthService(client api.Client, sessions session.Repository, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: client, sessions: sessions, log: log}
}

func (a *authService) Login(ctx context.Context, c models.Credentials) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	resp, err := a.client.Login(ctx, c)
	if err != nil {
		if re, ok := api.AsResponseError(err); ok {
			return "", userError(loginFailure(re), err)
		}
		a.log.Warn(ctx, "login request failed", "err", err)
		return "", networkError(err)
	}

	if resp.AccessToken != "" {
		if err := a.sessions.Set(ctx, session.Session{Token: resp.AccessToken, User: resp.User}); err != nil {
			return "", fmt.Errorf("save session: %w", err)
		}
	}

	a.log.Info(ctx, "logged in", "user", userName(resp.User, c))
	return firstNonEmpty(string(resp.Message), MsgLoginSuccess), nil
}

// loginFailure picks the message for a rejected login: the server's error
// field, then its message, then a fallback by status.
func loginFailure(re *api.ResponseError) string {
	if re.ErrorText != "" {
		return re.ErrorText
	}
	if re.Status >= http.StatusBadRequest && re.Message != "" {
		return re.Message
	}
	switch re.Status {
	case http.StatusUnauthorized:
		return msgInvalidCredentials
	case http.StatusBadRequest:
		return msgInvalidFormat
	default:
		return msgLoginFailed
	}
}

func (a *authService) Register(ctx context.Context, r models.RegistrationInput) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	resp, err := a.client.Register(ctx, r.Normalized())
	if err != nil {
		if re, ok := api.AsResponseError(err); ok {
			msg := firstNonEmpty(re.ErrorText, re.Message, fmt.Sprintf("Registration failed with status %d", re.Status))
			return "", userError(msg, err)
		}
		a.log.Warn(ctx, "register request failed", "err", err)
		return "", networkError(err)
	}

	if resp.AccessToken != "" {
		if err := a.sessions.Set(ctx, session.Session{Token: resp.AccessToken, User: resp.User}); err != nil {
			return "", fmt.Errorf("save session: %w", err)
		}
	}

	a.log.Info(ctx, "registered", "username", r.Normalized().Username)
	return firstNonEmpty(string(resp.Message), MsgRegisterSuccess), nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Session(ctx context.Context) (session.Session, error) {
	s, err := a.sessions.Get(ctx)
	if err != nil && !errors.Is(err, session.ErrNoSession) {
		return session.Session{}, fmt.Errorf("load session: %w", err)
	}
	return s, err
}

func userName(u *models.UserSummary, c models.Credentials) string {
	if u != nil && u.Username != "" {
		return u.Username
	}
	return firstNonEmpty(c.Username, c.Email)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
