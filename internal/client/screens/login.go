package screens

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/client/services"
)

// AlertCheckCredentials is raised next to the inline message when the server
// rejects a login.
const AlertCheckCredentials = "Please check your email or password"

// LoginState is a snapshot of the login screen.
type LoginState struct {
	Form    models.Credentials
	Status  Status
	Message string
	Alert   string
}

// LoginScreen collects credentials, authenticates and, on success, moves to
// the profile screen after the redirect delay.
type LoginScreen struct {
	mu       sync.Mutex
	state    LoginState
	auth     services.AuthService
	opts     Options
	redirect Timer
}

func NewLoginScreen(auth services.AuthService, opts Options) *LoginScreen {
	return &LoginScreen{auth: auth, opts: opts.withDefaults()}
}

func (s *LoginScreen) State() LoginState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *LoginScreen) SetEmail(v string) {
	s.edit(func(f *models.Credentials) { f.Email = v })
}

func (s *LoginScreen) SetUsername(v string) {
	s.edit(func(f *models.Credentials) { f.Username = v })
}

func (s *LoginScreen) SetPassword(v string) {
	s.edit(func(f *models.Credentials) { f.Password = v })
}

// edit applies a field change. Typing dismisses a previous error or
// success message.
func (s *LoginScreen) edit(fn func(*models.Credentials)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state.Form)
	if s.state.Status == StatusError || s.state.Status == StatusSuccess {
		s.state.Status = StatusIdle
		s.state.Message = ""
		s.state.Alert = ""
	}
}

// Submit validates the form and logs in. It returns ErrBusy while a previous
// submit is still running.
func (s *LoginScreen) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state.Status == StatusLoading {
		s.mu.Unlock()
		return ErrBusy
	}
	form := s.state.Form
	s.state.Message, s.state.Alert = "", ""
	if err := form.Validate(); err != nil {
		s.state.Status = StatusError
		s.state.Message = services.UserMessage(err)
		s.mu.Unlock()
		return err
	}
	s.state.Status = StatusLoading
	s.mu.Unlock()

	msg, err := s.auth.Login(ctx, form)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Status = StatusError
		s.state.Message = services.UserMessage(err)
		if services.IsRejected(err) {
			s.state.Alert = AlertCheckCredentials
		}
		return err
	}

	s.state.Status = StatusSuccess
	s.state.Message = msg
	s.state.Form.Reset()
	s.schedule(RouteProfile)
	return nil
}

func (s *LoginScreen) schedule(r Route) {
	if s.redirect != nil {
		s.redirect.Stop()
	}
	s.redirect = s.opts.Scheduler.AfterFunc(s.opts.RedirectDelay, func() {
		s.opts.Navigator.Navigate(r)
	})
}

// Reset drops form contents and messages and cancels a pending redirect.
func (s *LoginScreen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.redirect != nil {
		s.redirect.Stop()
		s.redirect = nil
	}
	if s.state.Status != StatusLoading {
		s.state = LoginState{}
	}
}
