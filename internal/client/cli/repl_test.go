package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophprofile/internal/client/screens"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	current screens.Route
	calls   []string
	shows   int
	errs    map[string]error
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.errs[strings.Fields(call)[0]]
}

func (f *fakeExec) route() screens.Route { return f.current }
func (f *fakeExec) Show() { f.shows++ }
func (f *fakeExec) Goto(name string) error {
	f.current = screens.Route("/" + name)
	return f.record("goto " + name)
}
func (f *fakeExec) Login(context.Context) error { return f.record("login") }
func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) SetField(_ context.Context, field, value string) error {
	return f.record(fmt.Sprintf("set %s=%s", field, value))
}
func (f *fakeExec) Submit(context.Context) error { return f.record("submit") }
func (f *fakeExec) Edit() error { return f.record("edit") }
func (f *fakeExec) AddInterest(v string) error { return f.record("add " + v) }
func (f *fakeExec) RemoveInterest(arg string) error {
	return f.record("rm " + arg)
}
func (f *fakeExec) Save(context.Context) error { return f.record("save") }
func (f *fakeExec) Cancel() error { return f.record("cancel") }
func (f *fakeExec) Retry(context.Context) error { return f.record("retry") }
func (f *fakeExec) Reload(context.Context) error { return f.record("reload") }
func (f *fakeExec) Logout(context.Context) error { return f.record("logout") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"",
		"email   a@b.com",
		"password",
		"set username  u  v ",
		"submit",
		"goto profile",
		"edit",
		"set name Ann  Lee",
		"add rock  climbing",
		"rm 2",
		"save",
		"cancel",
		"retry",
		"reload",
		"logout",
		"foobar",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{current: screens.RouteLogin}
	runREPL(context.Background(), exec, func() string { return "(ann)" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"set email=a@b.com",
		"set password=",
		"set username=u  v",
		"submit",
		"goto profile",
		"edit",
		"set name=Ann  Lee",
		"add rock  climbing",
		"rm 2",
		"save",
		"cancel",
		"retry",
		"reload",
		"logout",
	}, exec.calls)

	assert.Equal(t, "gp (ann) /login> ", (*out)[0])
	assert.Equal(t, helpLogin, (*out)[1])
	assert.Contains(t, *out, "Unknown command:foobar")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
	// everything except help, goto, logout and the unknown command renders
	assert.Equal(t, 12, exec.shows)
}

func TestRunREPL_ReportsErrors(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{
		current: screens.RouteProfile,
		errs: map[string]error{
			"save":  screens.ErrBusy,
			"edit":  screens.ErrInvalidState,
			"rm":    usageError("Usage: rm <index>"),
			"retry": fmt.Errorf("shown on screen"),
		},
	}
	input := "save\nedit\nrm x\nretry\nset\n"
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	assert.Contains(t, *out, "Please wait, a request is in progress.")
	assert.Contains(t, *out, "That command is not available right now.")
	assert.Contains(t, *out, "Usage: rm <index>")
	assert.Contains(t, *out, "Usage: set <field> <value>")
	assert.NotContains(t, *out, "shown on screen")
	assert.Equal(t, "gp /profile> ", (*out)[0])
}

func TestRunREPL_EOFWithoutNewline(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{current: screens.RouteProfile}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("edit")))
	assert.Equal(t, []string{"edit"}, exec.calls)
}

func TestRest(t *testing.T) {
	tests := []struct {
		line string
		n    int
		want string
	}{
		{"add Rock  climbing", 1, "Rock  climbing"},
		{"  set   name  Ann Lee \n", 2, "Ann Lee"},
		{"add", 1, ""},
		{"set name", 2, ""},
		{"show", 0, "show"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rest(tt.line, tt.n), tt.line)
	}
}

func TestHelpText(t *testing.T) {
	assert.Equal(t, helpLogin, helpText(screens.RouteLogin))
	assert.Equal(t, helpRegister, helpText(screens.RouteRegister))
	assert.Equal(t, helpProfile, helpText(screens.RouteProfile))
}
