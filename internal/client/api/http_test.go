package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/apitest"
	"github.com/dmitrijs2005/gophprofile/internal/client/api"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Headers(t *testing.T) {
	var got http.Header
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		method, path = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{"message":"ok","data":{"email":"a@b.co","username":"ann","interests":[]}}`))
	}))
	defer srv.Close()

	c := api.NewHTTPClient(srv.URL + "/")
	resp, err := c.GetProfile(context.Background(), "tok-1")
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "ann", resp.Data.Username)

	assert.Equal(t, http.MethodGet, method)
	assert.Equal(t, api.GetProfilePath, path)
	assert.Equal(t, "tok-1", got.Get("x-access-token"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestHTTPClient_NoTokenHeaderOnLogin(t *testing.T) {
	var got http.Header
	var body models.Credentials
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"access_token":"abc","user":{"id":"1","email":"a@b.co","username":"ann"}}`))
	}))
	defer srv.Close()

	c := api.NewHTTPClient(srv.URL)
	resp, err := c.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.AccessToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "1", resp.User.ID)

	_, present := got["X-Access-Token"]
	assert.False(t, present)
	assert.Equal(t, "a@b.co", body.Email)
	assert.Equal(t, "secret", body.Password)
}

func TestHTTPClient_ResponseErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantError   string
		wantUnauth  bool
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Unauthorized","statusCode":401}`, "Unauthorized", "", true},
		{"message list", http.StatusBadRequest, `{"message":["email must be an email","password too short"],"error":"Bad Request"}`, "email must be an email; password too short", "Bad Request", false},
		{"error only", http.StatusConflict, `{"error":"User already exists"}`, "", "User already exists", false},
		{"not json", http.StatusInternalServerError, `<html>oops</html>`, "", "", false},
		{"empty", http.StatusBadGateway, ``, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := api.NewHTTPClient(srv.URL).Register(context.Background(), models.RegistrationInput{})
			require.Error(t, err)

			re, ok := api.AsResponseError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, re.Status)
			assert.Equal(t, tt.wantMessage, re.Message)
			assert.Equal(t, tt.wantError, re.ErrorText)
			assert.Equal(t, tt.wantUnauth, errors.Is(err, api.ErrUnauthorized))
			assert.False(t, api.IsNetworkError(err))
		})
	}
}

func TestHTTPClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := api.NewHTTPClient(url).Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})
	require.ErrorIs(t, err, api.ErrUnavailable)
	assert.True(t, api.IsNetworkError(err))
}

func TestHTTPClient_BadSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":`))
	}))
	defer srv.Close()

	_, err := api.NewHTTPClient(srv.URL).GetProfile(context.Background(), "t")
	require.ErrorIs(t, err, api.ErrBadResponse)
	assert.True(t, api.IsNetworkError(err))
}

func TestHTTPClient_EmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := api.NewHTTPClient(srv.URL).UpdateProfile(context.Background(), "t", models.ProfileUpdate{})
	require.NoError(t, err)
	assert.Empty(t, resp.Message)
}

func TestHTTPClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := api.NewHTTPClient(srv.URL, api.WithTimeout(50*time.Millisecond))
	_, err := c.GetProfile(context.Background(), "t")
	require.ErrorIs(t, err, api.ErrUnavailable)
}

func TestHTTPClient_AgainstFakeServer(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	ctx := context.Background()
	c := api.NewHTTPClient(srv.URL)

	_, err := c.Register(ctx, models.RegistrationInput{Email: "ann@example.com", Username: "ann", Password: "secret1"})
	require.NoError(t, err)

	login, err := c.Login(ctx, models.Credentials{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)

	_, err = c.UpdateProfile(ctx, login.AccessToken, models.ProfileUpdate{
		Name:      "Ann",
		Birthday:  "1990-08-01",
		Height:    170,
		Interests: []string{"Music"},
	})
	require.NoError(t, err)

	prof, err := c.GetProfile(ctx, login.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, prof.Data)
	require.NotNil(t, prof.Data.Name)
	assert.Equal(t, "Ann", *prof.Data.Name)
	require.NotNil(t, prof.Data.Horoscope)
	assert.Equal(t, "Leo", *prof.Data.Horoscope)
	assert.Nil(t, prof.Data.Weight)
	assert.Equal(t, []string{"Music"}, prof.Data.Interests)

	ids := srv.RequestIDs()
	require.Len(t, ids, 4)
	assert.NotEqual(t, ids[0], ids[1])
}
