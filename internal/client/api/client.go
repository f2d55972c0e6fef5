package api

import (
	"context"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
)

const (
	LoginPath         = "/api/login"
	RegisterPath      = "/api/register"
	GetProfilePath    = "/api/getProfile"
	UpdateProfilePath = "/api/updateProfile"
)

// Client is the remote API contract.
type Client interface {
	Login(ctx context.Context, c models.Credentials) (*AuthResponse, error)
	Register(ctx context.Context, r models.RegistrationInput) (*AuthResponse, error)
	GetProfile(ctx context.Context, token string) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, token string, u models.ProfileUpdate) (*MessageResponse, error)
}
