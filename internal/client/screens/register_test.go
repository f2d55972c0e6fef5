package screens

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophprofile/internal/apitest"
	"github.com/dmitrijs2005/gophprofile/internal/client/api"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/client/repositories/session"
	"github.com/dmitrijs2005/gophprofile/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterScreen_Validation(t *testing.T) {
	tests := []struct {
		name                      string
		email, username, password string
		want                      string
	}{
		{"missing", "a@b.com", "", "secret1", "All fields are required"},
		{"bad email", "a@b", "ann", "secret1", "Please enter a valid email address"},
		{"short username", "a@b.com", "an", "secret1", "Username must be at least 3 characters long"},
		{"short password", "a@b.com", "ann", "12345", "Password must be at least 6 characters long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := apitest.New()
			defer srv.Close()
			s := NewRegisterScreen(
				services.NewAuthService(api.NewHTTPClient(srv.URL), session.NewMemoryRepository(), nil),
				opts(&fakeScheduler{}, &fakeNavigator{}),
			)
			s.SetEmail(tt.email)
			s.SetUsername(tt.username)
			s.SetPassword(tt.password)

			require.Error(t, s.Submit(context.Background()))
			assert.Equal(t, tt.want, s.State().Message)
			assert.Zero(t, srv.TotalCalls())
		})
	}
}

func TestRegisterScreen_Success(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	sched := &fakeScheduler{}
	nav := &fakeNavigator{}
	s := NewRegisterScreen(
		services.NewAuthService(api.NewHTTPClient(srv.URL), session.NewMemoryRepository(), nil),
		opts(sched, nav),
	)
	s.SetEmail("ann@example.com")
	s.SetUsername(" ann ")
	s.SetPassword("secret1")

	require.NoError(t, s.Submit(context.Background()))
	st := s.State()
	assert.Equal(t, StatusSuccess, st.Status)
	assert.Equal(t, "User has been created successfully", st.Message)
	assert.Equal(t, models.RegistrationInput{}, st.Form)

	assert.JSONEq(t, `{"email":"ann@example.com","username":"ann","password":"secret1"}`, string(srv.LastBody(api.RegisterPath)))

	require.Len(t, sched.pending(), 1)
	assert.Equal(t, DefaultRedirectDelay, sched.pending()[0].delay)
	sched.Fire()
	assert.Equal(t, []Route{RouteLogin}, nav.Routes())
}

func TestRegisterScreen_PaddedEmailRejected(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	s := NewRegisterScreen(
		services.NewAuthService(api.NewHTTPClient(srv.URL), session.NewMemoryRepository(), nil),
		opts(&fakeScheduler{}, &fakeNavigator{}),
	)
	s.SetEmail(" ann@example.com ")
	s.SetUsername("ann")
	s.SetPassword("secret1")

	err := s.Submit(context.Background())
	require.ErrorIs(t, err, models.ErrInvalidEmail)
	assert.Equal(t, StatusError, s.State().Status)
	assert.Zero(t, srv.TotalCalls())
}

func TestRegisterScreen_Duplicate(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	_, err := srv.Seed("ann@example.com", "ann", "secret1")
	require.NoError(t, err)

	sched := &fakeScheduler{}
	s := NewRegisterScreen(
		services.NewAuthService(api.NewHTTPClient(srv.URL), session.NewMemoryRepository(), nil),
		opts(sched, &fakeNavigator{}),
	)
	s.SetEmail("ann@example.com")
	s.SetUsername("ann")
	s.SetPassword("secret1")

	require.Error(t, s.Submit(context.Background()))
	st := s.State()
	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, "Conflict", st.Message)
	assert.Equal(t, "ann@example.com", st.Form.Email)
	assert.Empty(t, sched.pending())
}
