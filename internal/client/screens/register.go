package screens

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/client/services"
)

// RegisterState is a snapshot of the register screen.
type RegisterState struct {
	Form    models.RegistrationInput
	Status  Status
	Message string
}

// RegisterScreen creates an account and moves to the login screen after the
// redirect delay.
type RegisterScreen struct {
	mu       sync.Mutex
	state    RegisterState
	auth     services.AuthService
	opts     Options
	redirect Timer
}

func NewRegisterScreen(auth services.AuthService, opts Options) *RegisterScreen {
	return &RegisterScreen{auth: auth, opts: opts.withDefaults()}
}

func (s *RegisterScreen) State() RegisterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *RegisterScreen) SetEmail(v string) {
	s.edit(func(f *models.RegistrationInput) { f.Email = v })
}

func (s *RegisterScreen) SetUsername(v string) {
	s.edit(func(f *models.RegistrationInput) { f.Username = v })
}

func (s *RegisterScreen) SetPassword(v string) {
	s.edit(func(f *models.RegistrationInput) { f.Password = v })
}

func (s *RegisterScreen) edit(fn func(*models.RegistrationInput)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state.Form)
	if s.state.Status == StatusError || s.state.Status == StatusSuccess {
		s.state.Status = StatusIdle
		s.state.Message = ""
	}
}

// Submit validates and registers. Validation failures never reach the
// network.
func (s *RegisterScreen) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state.Status == StatusLoading {
		s.mu.Unlock()
		return ErrBusy
	}
	form := s.state.Form
	s.state.Message = ""
	if err := form.Validate(); err != nil {
		s.state.Status = StatusError
		s.state.Message = services.UserMessage(err)
		s.mu.Unlock()
		return err
	}
	s.state.Status = StatusLoading
	s.mu.Unlock()

	msg, err := s.auth.Register(ctx, form)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Status = StatusError
		s.state.Message = services.UserMessage(err)
		return err
	}

	s.state.Status = StatusSuccess
	s.state.Message = msg
	s.state.Form.Reset()
	if s.redirect != nil {
		s.redirect.Stop()
	}
	s.redirect = s.opts.Scheduler.AfterFunc(s.opts.RedirectDelay, func() {
		s.opts.Navigator.Navigate(RouteLogin)
	})
	return nil
}

// Reset drops form contents and messages and cancels a pending redirect.
func (s *RegisterScreen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.redirect != nil {
		s.redirect.Stop()
		s.redirect = nil
	}
	if s.state.Status != StatusLoading {
		s.state = RegisterState{}
	}
}
