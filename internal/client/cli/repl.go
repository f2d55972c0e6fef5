package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophprofile/internal/client/screens"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. *App satisfies it; tests
// provide a stub.
type execIface interface {
	route() screens.Route
	Show()
	Goto(name string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	SetField(ctx context.Context, field, value string) error
	Submit(ctx context.Context) error
	Edit() error
	AddInterest(v string) error
	RemoveInterest(arg string) error
	Save(ctx context.Context) error
	Cancel() error
	Retry(ctx context.Context) error
	Reload(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpLogin    = "Available commands: login, email <v>, username <v>, password [v], submit, register, goto register, show, exit"
	helpRegister = "Available commands: register, email <v>, username <v>, password [v], submit, goto login, show, exit"
	helpProfile  = "Available commands: show, edit, set name|birthday|height|weight <v>, add <interest>, rm <index>, save, cancel, retry, reload, logout, exit"
)

func helpText(r screens.Route) string {
	switch r {
	case screens.RouteRegister:
		return helpRegister
	case screens.RouteProfile:
		return helpProfile
	default:
		return helpLogin
	}
}

// runREPL reads one command per line and dispatches it to a. The prompt
// shows the status from statusFn and the active route. After a command that
// changes screen state the active screen is rendered again.
//
// Errors carrying a user message are already visible on the screen; the
// loop only reports busy screens, unavailable commands and usage mistakes.
// It exits on EOF or on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		prompt := "gp"
		if s := statusFn(); s != "" {
			prompt += " " + s
		}
		printlnFn(fmt.Sprintf("%s %s> ", prompt, a.route()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		err = nil

		render := true
		switch cmd {
		case "help":
			printlnFn(helpText(a.route()))
			render = false
		case "show":
		case "goto":
			err = a.Goto(rest(line, 1))
			render = false
		case "login":
			err = a.Login(ctx)
		case "register":
			err = a.Register(ctx)
		case "email", "username", "password":
			err = a.SetField(ctx, cmd, rest(line, 1))
		case "set":
			if len(parts) < 2 {
				err = usageError("Usage: set <field> <value>")
				break
			}
			err = a.SetField(ctx, parts[1], rest(line, 2))
		case "submit":
			err = a.Submit(ctx)
		case "edit":
			err = a.Edit()
		case "add":
			err = a.AddInterest(rest(line, 1))
		case "rm", "remove":
			err = a.RemoveInterest(rest(line, 1))
		case "save":
			err = a.Save(ctx)
		case "cancel":
			err = a.Cancel()
		case "retry":
			err = a.Retry(ctx)
		case "reload":
			err = a.Reload(ctx)
		case "logout":
			err = a.Logout(ctx)
			render = false
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		report(err)
		if render {
			a.Show()
		}
	}
}

func report(err error) {
	var usage usageError
	switch {
	case err == nil:
	case errors.Is(err, screens.ErrBusy):
		printlnFn("Please wait, a request is in progress.")
	case errors.Is(err, screens.ErrInvalidState):
		printlnFn("That command is not available right now.")
	case errors.As(err, &usage):
		printlnFn(usage.Error())
	}
}

// rest returns line without its first n words, inner spacing kept.
func rest(line string, n int) string {
	s := line
	for range n {
		s = strings.TrimLeft(s, " \t")
		i := strings.IndexAny(s, " \t")
		if i < 0 {
			return ""
		}
		s = s[i:]
	}
	return strings.TrimSpace(s)
}
