package screens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/client/repositories/session"
)

type fakeTask struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTask) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

// fakeScheduler records delayed actions; Fire runs the pending ones.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*fakeTask
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTask{delay: d, fn: f}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *fakeScheduler) pending() []*fakeTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*fakeTask
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

func (s *fakeScheduler) Fire() {
	for _, t := range s.pending() {
		t.fired = true
		t.fn()
	}
}

type fakeNavigator struct {
	mu     sync.Mutex
	routes []Route
}

func (n *fakeNavigator) Navigate(r Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, r)
}

func (n *fakeNavigator) Routes() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Route(nil), n.routes...)
}

// fakeAuth implements services.AuthService.
type fakeAuth struct {
	LoginMsg  string
	LoginErr  error
	Block     chan struct{}
	LoginArgs []models.Credentials

	RegisterMsg  string
	RegisterErr  error
	RegisterArgs []models.RegistrationInput

	LogoutCalls int
}

func (f *fakeAuth) Login(_ context.Context, c models.Credentials) (string, error) {
	f.LoginArgs = append(f.LoginArgs, c)
	if f.Block != nil {
		<-f.Block
	}
	return f.LoginMsg, f.LoginErr
}

func (f *fakeAuth) Register(_ context.Context, r models.RegistrationInput) (string, error) {
	f.RegisterArgs = append(f.RegisterArgs, r)
	return f.RegisterMsg, f.RegisterErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.LogoutCalls++
	return nil
}

func (f *fakeAuth) Session(context.Context) (session.Session, error) {
	return session.Session{}, session.ErrNoSession
}

// fakeProfiles implements services.ProfileService.
type fakeProfiles struct {
	Profiles   []*models.Profile
	FetchErr   error
	FetchCalls int

	UpdateMsg  string
	UpdateErr  error
	Updates    []models.ProfileUpdate
}

func (f *fakeProfiles) Fetch(context.Context) (*models.Profile, error) {
	f.FetchCalls++
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	i := min(f.FetchCalls, len(f.Profiles)) - 1
	return f.Profiles[i], nil
}

func (f *fakeProfiles) Update(_ context.Context, u models.ProfileUpdate) (string, error) {
	f.Updates = append(f.Updates, u)
	return f.UpdateMsg, f.UpdateErr
}

func opts(s *fakeScheduler, n *fakeNavigator) Options {
	return Options{Scheduler: s, Navigator: n}
}

func strp(s string) *string { return &s }

func intp(i int) *int { return &i }
