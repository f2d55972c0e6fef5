package screens

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/client/services"
)

// ProfileStatus is the state of the profile screen.
type ProfileStatus int

const (
	ProfileLoading ProfileStatus = iota
	ProfileError
	ProfileReady
	ProfileEditing
	ProfileSaving
)

func (s ProfileStatus) String() string {
	switch s {
	case ProfileLoading:
		return "loading"
	case ProfileError:
		return "error"
	case ProfileReady:
		return "ready"
	case ProfileEditing:
		return "editing"
	case ProfileSaving:
		return "saving"
	default:
		return "unknown"
	}
}

// ProfileState is a snapshot of the profile screen.
//
// Profile is the last fetched server projection and is never modified
// locally. Edit is the staged buffer submitted by Save. Error holds a fetch
// or save failure, Notice the last save success, and InterestError a
// transient interest validation message that clears after the notice TTL.
type ProfileState struct {
	Status        ProfileStatus
	Profile       *models.Profile
	Edit          models.ProfileUpdate
	Error         string
	Notice        string
	InterestError string
}

// ProfileScreen shows and edits the profile of the logged-in user.
type ProfileScreen struct {
	mu       sync.Mutex
	state    ProfileState
	busy     bool
	gen      uint64
	profiles services.ProfileService
	auth     services.AuthService
	opts     Options
	redirect Timer
}

func NewProfileScreen(profiles services.ProfileService, auth services.AuthService, opts Options) *ProfileScreen {
	return &ProfileScreen{
		profiles: profiles,
		auth:     auth,
		opts:     opts.withDefaults(),
		state:    ProfileState{Edit: models.NewEditBuffer(nil)},
	}
}

// State returns a copy; the interests slice is not shared with the screen.
func (s *ProfileScreen) State() ProfileState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Edit.Interests = slices.Clone(st.Edit.Interests)
	return st
}

// Load fetches the profile and seeds the edit buffer. A missing or rejected
// token schedules a move to the login screen.
func (s *ProfileScreen) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.state.Status = ProfileLoading
	s.state.Error = ""
	s.mu.Unlock()

	p, err := s.profiles.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		s.state.Status = ProfileError
		s.state.Error = services.UserMessage(err)
		if errors.Is(err, services.ErrNoToken) || errors.Is(err, services.ErrSessionExpired) {
			s.toLogin()
		}
		return err
	}

	s.state.Status = ProfileReady
	s.state.Profile = p
	s.state.Edit = models.NewEditBuffer(p)
	return nil
}

// Retry reloads after a failed fetch.
func (s *ProfileScreen) Retry(ctx context.Context) error {
	s.mu.Lock()
	st := s.state.Status
	s.mu.Unlock()
	if st != ProfileError {
		return ErrInvalidState
	}
	return s.Load(ctx)
}

func (s *ProfileScreen) toLogin() {
	if s.redirect != nil {
		s.redirect.Stop()
	}
	s.redirect = s.opts.Scheduler.AfterFunc(s.opts.RedirectDelay, func() {
		s.opts.Navigator.Navigate(RouteLogin)
	})
}

// Edit enters edit mode with a buffer seeded from the snapshot.
func (s *ProfileScreen) Edit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status != ProfileReady {
		return ErrInvalidState
	}
	s.state.Status = ProfileEditing
	s.state.Edit = models.NewEditBuffer(s.state.Profile)
	s.state.Error, s.state.Notice, s.state.InterestError = "", "", ""
	return nil
}

func (s *ProfileScreen) SetName(v string) error {
	return s.editing(func(u *models.ProfileUpdate) { u.Name = v })
}

func (s *ProfileScreen) SetBirthday(v string) error {
	return s.editing(func(u *models.ProfileUpdate) { u.Birthday = v })
}

// SetHeight stores the parsed value, 0 when raw is not a number.
func (s *ProfileScreen) SetHeight(raw string) error {
	return s.editing(func(u *models.ProfileUpdate) { u.Height = models.ParseMeasure(raw) })
}

// SetWeight stores the parsed value, 0 when raw is not a number.
func (s *ProfileScreen) SetWeight(raw string) error {
	return s.editing(func(u *models.ProfileUpdate) { u.Weight = models.ParseMeasure(raw) })
}

func (s *ProfileScreen) RemoveInterest(index int) error {
	return s.editing(func(u *models.ProfileUpdate) { u.RemoveInterest(index) })
}

func (s *ProfileScreen) editing(fn func(*models.ProfileUpdate)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status != ProfileEditing {
		return ErrInvalidState
	}
	fn(&s.state.Edit)
	return nil
}

// AddInterest appends to the buffer. A rejection is shown as a transient
// message that clears after the notice TTL unless a newer one replaced it.
func (s *ProfileScreen) AddInterest(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status != ProfileEditing {
		return ErrInvalidState
	}

	s.gen++
	if err := s.state.Edit.AddInterest(raw); err != nil {
		s.state.InterestError = services.UserMessage(err)
		gen := s.gen
		s.opts.Scheduler.AfterFunc(s.opts.NoticeTTL, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.gen == gen {
				s.state.InterestError = ""
			}
		})
		return err
	}
	s.state.InterestError = ""
	return nil
}

// Cancel leaves edit mode and restores the buffer from the snapshot.
func (s *ProfileScreen) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status != ProfileEditing {
		return ErrInvalidState
	}
	s.gen++
	s.state.Status = ProfileReady
	s.state.Edit = models.NewEditBuffer(s.state.Profile)
	s.state.Error, s.state.Notice, s.state.InterestError = "", "", ""
	return nil
}

// Save submits the buffer as a full replace. On failure the screen stays in
// edit mode with the message inline; on success it re-fetches the profile,
// so the buffer itself is never promoted to the snapshot.
func (s *ProfileScreen) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	if s.state.Status != ProfileEditing {
		s.mu.Unlock()
		return ErrInvalidState
	}
	buf := s.state.Edit
	buf.Interests = slices.Clone(buf.Interests)
	s.busy = true
	s.state.Status = ProfileSaving
	s.state.Error, s.state.Notice = "", ""
	s.mu.Unlock()

	msg, err := s.profiles.Update(ctx, buf)

	s.mu.Lock()
	s.busy = false
	if err != nil {
		s.state.Status = ProfileEditing
		s.state.Error = services.UserMessage(err)
		s.mu.Unlock()
		return err
	}
	s.state.Status = ProfileReady
	s.state.Notice = msg
	s.mu.Unlock()

	return s.Load(ctx)
}

// Logout drops the session and moves to the login screen right away.
func (s *ProfileScreen) Logout(ctx context.Context) error {
	if err := s.auth.Logout(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	if s.redirect != nil {
		s.redirect.Stop()
		s.redirect = nil
	}
	s.gen++
	s.state = ProfileState{Edit: models.NewEditBuffer(nil)}
	s.mu.Unlock()

	s.opts.Navigator.Navigate(RouteLogin)
	return nil
}
