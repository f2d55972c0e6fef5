package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophprofile/internal/client/screens"
	"github.com/dmitrijs2005/gophprofile/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// usageError is printed by the REPL as is.
type usageError string

func (e usageError) Error() string { return string(e) }

func (a *App) route() screens.Route {
	return a.router.Current()
}

// Goto switches to another screen by name.
func (a *App) Goto(name string) error {
	switch name {
	case "login", string(screens.RouteLogin):
		a.router.Navigate(screens.RouteLogin)
	case "register", string(screens.RouteRegister):
		a.router.Navigate(screens.RouteRegister)
	case "profile", string(screens.RouteProfile):
		a.router.Navigate(screens.RouteProfile)
	default:
		return usageError("Usage: goto login|register|profile")
	}
	return nil
}

// Login switches to the login screen if needed, prompts for all three
// fields and submits.
func (a *App) Login(ctx context.Context) error {
	if a.route() != screens.RouteLogin {
		a.router.Navigate(screens.RouteLogin)
	}

	email, username, password, err := a.promptCredentials("Enter username (optional)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.login.SetEmail(email)
	a.login.SetUsername(username)
	a.login.SetPassword(string(password))
	return a.login.Submit(ctx)
}

// Register is the register-screen counterpart of Login.
func (a *App) Register(ctx context.Context) error {
	if a.route() != screens.RouteRegister {
		a.router.Navigate(screens.RouteRegister)
	}

	email, username, password, err := a.promptCredentials("Enter username")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.register.SetEmail(email)
	a.register.SetUsername(username)
	a.register.SetPassword(string(password))
	return a.register.Submit(ctx)
}

func (a *App) promptCredentials(usernamePrompt string) (string, string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", "", nil, err
	}
	username, err := getSimpleText(a.reader, usernamePrompt, a.out)
	if err != nil {
		return "", "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", "", nil, err
	}
	return email, username, password, nil
}

// SetField sets one input of the active screen. On the login and register
// screens an empty password value prompts without echo.
func (a *App) SetField(_ context.Context, field, value string) error {
	switch a.route() {
	case screens.RouteLogin:
		return a.setFormField(field, value, a.login.SetEmail, a.login.SetUsername, a.login.SetPassword)
	case screens.RouteRegister:
		return a.setFormField(field, value, a.register.SetEmail, a.register.SetUsername, a.register.SetPassword)
	case screens.RouteProfile:
		switch field {
		case "name":
			return a.profile.SetName(value)
		case "birthday":
			return a.profile.SetBirthday(value)
		case "height":
			return a.profile.SetHeight(value)
		case "weight":
			return a.profile.SetWeight(value)
		}
		return usageError("Usage: set name|birthday|height|weight <value>")
	}
	return screens.ErrInvalidState
}

func (a *App) setFormField(field, value string, email, username, password func(string)) error {
	switch field {
	case "email":
		email(value)
	case "username":
		username(value)
	case "password":
		if value == "" {
			pw, err := getPassword(a.out)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(pw)
			value = string(pw)
		}
		password(value)
	default:
		return usageError("Usage: set email|username|password <value>")
	}
	return nil
}

// Submit sends the login or register form.
func (a *App) Submit(ctx context.Context) error {
	switch a.route() {
	case screens.RouteLogin:
		return a.login.Submit(ctx)
	case screens.RouteRegister:
		return a.register.Submit(ctx)
	}
	return screens.ErrInvalidState
}

func (a *App) onProfile(fn func() error) error {
	if a.route() != screens.RouteProfile {
		return screens.ErrInvalidState
	}
	return fn()
}

func (a *App) Edit() error {
	return a.onProfile(a.profile.Edit)
}

func (a *App) AddInterest(v string) error {
	return a.onProfile(func() error { return a.profile.AddInterest(v) })
}

func (a *App) RemoveInterest(arg string) error {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return usageError("Usage: rm <index>")
	}
	return a.onProfile(func() error { return a.profile.RemoveInterest(i) })
}

func (a *App) Save(ctx context.Context) error {
	return a.onProfile(func() error { return a.profile.Save(ctx) })
}

func (a *App) Cancel() error {
	return a.onProfile(a.profile.Cancel)
}

// Retry re-fetches the profile after a failure.
func (a *App) Retry(ctx context.Context) error {
	return a.onProfile(func() error { return a.profile.Retry(ctx) })
}

// Reload re-fetches the profile from any non-busy state except editing.
func (a *App) Reload(ctx context.Context) error {
	return a.onProfile(func() error {
		if a.profile.State().Status == screens.ProfileEditing {
			return screens.ErrInvalidState
		}
		return a.profile.Load(ctx)
	})
}

// Logout clears the session; the profile screen moves to login.
func (a *App) Logout(ctx context.Context) error {
	err := a.onProfile(func() error { return a.profile.Logout(ctx) })
	if err != nil && !errors.Is(err, screens.ErrInvalidState) {
		a.log.Error(ctx, "logout failed", "err", err)
		a.println(fmt.Sprintf("Logout failed: %v", err))
	}
	return err
}
