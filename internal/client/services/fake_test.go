package services

import (
	"context"

	"github.com/dmitrijs2005/gophprofile/internal/client/api"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
)

// fakeClient implements api.Client with canned answers and records the
// arguments it was called with.
type fakeClient struct {
	LoginResp *api.AuthResponse
	LoginErr  error
	LastLogin models.Credentials

	RegisterResp *api.AuthResponse
	RegisterErr  error
	LastRegister models.RegistrationInput

	ProfileResp *api.ProfileResponse
	ProfileErr  error

	UpdateResp *api.MessageResponse
	UpdateErr  error
	LastUpdate models.ProfileUpdate

	Tokens []string
	Calls  int
}

func (f *fakeClient) Login(_ context.Context, c models.Credentials) (*api.AuthResponse, error) {
	f.Calls++
	f.LastLogin = c
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, r models.RegistrationInput) (*api.AuthResponse, error) {
	f.Calls++
	f.LastRegister = r
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) GetProfile(_ context.Context, token string) (*api.ProfileResponse, error) {
	f.Calls++
	f.Tokens = append(f.Tokens, token)
	return f.ProfileResp, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, token string, u models.ProfileUpdate) (*api.MessageResponse, error) {
	f.Calls++
	f.Tokens = append(f.Tokens, token)
	f.LastUpdate = u
	return f.UpdateResp, f.UpdateErr
}
