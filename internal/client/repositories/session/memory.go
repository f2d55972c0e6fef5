package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
)

// MemoryRepository keeps the session in process memory.
type MemoryRepository struct {
	mu    sync.Mutex
	token string
	user  *models.UserSummary
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Get(_ context.Context) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.token == "" {
		return Session{}, ErrNoSession
	}
	s := Session{Token: r.token}
	if r.user != nil {
		u := *r.user
		s.User = &u
	}
	return s, nil
}

func (r *MemoryRepository) Set(_ context.Context, s Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.token = s.Token
	r.user = nil
	if s.User != nil {
		u := *s.User
		r.user = &u
	}
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.token, r.user = "", nil
	return nil
}
