// Package apitest runs an in-process fake of the remote authentication and
// profile API for tests. It keeps users in memory, hashes passwords with
// bcrypt and issues HS256 JWT access tokens.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/client/api"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Canned is a scripted answer returned instead of the normal handler.
type Canned struct {
	Status int
	Body   any
}

type user struct {
	ID           string
	Email        string
	Username     string
	PasswordHash []byte
	Profile      models.ProfileUpdate
}

// Server is the fake API. Its zero value is not usable; call New.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	users      map[string]*user
	secret     []byte
	tokenTTL   time.Duration
	now        func() time.Time
	canned     map[string][]Canned
	calls      map[string]int
	requestIDs []string
	tokens     []string
	bodies     map[string][]byte
}

type Option func(*Server)

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(d time.Duration) Option {
	return func(s *Server) { s.tokenTTL = d }
}

// WithClock replaces time.Now for token issuing and validation.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New starts the fake server. Close it when done.
func New(opts ...Option) *Server {
	s := &Server{
		users:    make(map[string]*user),
		secret:   []byte("apitest-secret"),
		tokenTTL: time.Hour,
		now:      time.Now,
		canned:   make(map[string][]Canned),
		calls:    make(map[string]int),
		bodies:   make(map[string][]byte),
	}
	for _, o := range opts {
		o(s)
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Post(api.LoginPath, s.handleLogin)
	r.Post(api.RegisterPath, s.handleRegister)
	r.Get(api.GetProfilePath, s.authenticated(s.handleGetProfile))
	r.Put(api.UpdateProfilePath, s.authenticated(s.handleUpdateProfile))
	return r
}

// Respond queues a canned answer for the next request to path. Queued
// answers are served in order before normal handling resumes.
func (s *Server) Respond(path string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canned[path] = append(s.canned[path], Canned{Status: status, Body: body})
}

// Calls returns how many requests reached path.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// TotalCalls returns the number of requests across all paths.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// RequestIDs returns the request ids seen so far, in order.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

// Tokens returns the access tokens presented so far, in order.
func (s *Server) Tokens() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tokens...)
}

// LastBody returns the raw body of the last request to path.
func (s *Server) LastBody(path string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.bodies[path]...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := readAll(r)

		s.mu.Lock()
		s.calls[r.URL.Path]++
		s.requestIDs = append(s.requestIDs, middleware.GetReqID(r.Context()))
		if tok := r.Header.Get(common.AccessTokenHeaderName); tok != "" {
			s.tokens = append(s.tokens, tok)
		}
		s.bodies[r.URL.Path] = body
		var c *Canned
		if q := s.canned[r.URL.Path]; len(q) > 0 {
			c = &q[0]
			s.canned[r.URL.Path] = q[1:]
		}
		s.mu.Unlock()

		if c != nil {
			writeJSON(w, c.Status, c.Body)
			return
		}
		r.Body = newBody(body)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if raw, ok := payload.(string); ok {
		_, _ = w.Write([]byte(raw))
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg ...string) {
	body := map[string]any{"statusCode": status, "error": http.StatusText(status)}
	switch len(msg) {
	case 0:
	case 1:
		body["message"] = msg[0]
	default:
		body["message"] = msg
	}
	writeJSON(w, status, body)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
