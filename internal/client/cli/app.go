package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/client/api"
	"github.com/dmitrijs2005/gophprofile/internal/client/config"
	"github.com/dmitrijs2005/gophprofile/internal/client/repositories/session"
	"github.com/dmitrijs2005/gophprofile/internal/client/screens"
	"github.com/dmitrijs2005/gophprofile/internal/client/services"
	"github.com/dmitrijs2005/gophprofile/internal/client/storage"
	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	authService services.AuthService
	login       *screens.LoginScreen
	register    *screens.RegisterScreen
	profile     *screens.ProfileScreen
	router      *Router

	ctx    context.Context
	reader *bufio.Reader
	outMu  sync.Mutex
	out    io.Writer
	now    func() time.Time
}

// NewApp opens the session database and wires the API client, services and
// screens.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log),
	)
	a := newApp(ctx, c, log, apiClient, session.NewSQLiteRepository(db), screens.RealScheduler{}, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, client api.Client, sessions session.Repository,
	sched screens.Scheduler, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		log:    log,
		ctx:    ctx,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}
	a.router = NewRouter(screens.RouteLogin, a.enter)

	opts := screens.Options{
		Scheduler:     sched,
		Navigator:     a.router,
		RedirectDelay: c.RedirectDelay,
		NoticeTTL:     c.NoticeTTL,
		Logger:        log,
	}
	a.authService = services.NewAuthService(client, sessions, log)
	profiles := services.NewProfileService(client, sessions, log)

	a.login = screens.NewLoginScreen(a.authService, opts)
	a.register = screens.NewRegisterScreen(a.authService, opts)
	a.profile = screens.NewProfileScreen(profiles, a.authService, opts)
	return a
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run starts on the profile screen when a session is stored, on the login
// screen otherwise, and blocks in the REPL until the user exits or input
// ends.
func (a *App) Run(ctx context.Context) {
	a.ctx = ctx
	a.println("Welcome to GophProfile (type 'help' for commands)")

	start := screens.RouteLogin
	if _, err := a.authService.Session(ctx); err == nil {
		start = screens.RouteProfile
	} else if !errors.Is(err, session.ErrNoSession) {
		a.log.Warn(ctx, "cannot read session", "err", err)
	}
	a.router.Navigate(start)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// enter runs when the router switches screens, possibly from a timer.
func (a *App) enter(r screens.Route) {
	a.log.Debug(a.ctx, "navigate", "route", string(r))
	switch r {
	case screens.RouteLogin:
		a.login.Reset()
	case screens.RouteRegister:
		a.register.Reset()
	case screens.RouteProfile:
		a.println(fmt.Sprintf("-> %s", r))
		_ = a.profile.Load(a.ctx)
	}
	a.Show()
}

// getStatus is the prompt prefix: the stored username and, for JWT tokens,
// the expiry time.
func (a *App) getStatus() string {
	s, err := a.authService.Session(a.ctx)
	if err != nil {
		return ""
	}

	name := "logged in"
	if s.User != nil && s.User.Username != "" {
		name = s.User.Username
	}
	info, ok := session.Inspect(s.Token)
	switch {
	case !ok || info.ExpiresAt.IsZero():
		return fmt.Sprintf("(%s)", name)
	case s.Expired(a.now()):
		return fmt.Sprintf("(%s, token expired)", name)
	default:
		return fmt.Sprintf("(%s, until %s)", name, info.ExpiresAt.Local().Format("15:04"))
	}
}

func (a *App) println(s string) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, s)
}

// Show renders the active screen.
func (a *App) Show() {
	var text string
	switch a.router.Current() {
	case screens.RouteLogin:
		text = screens.RenderLogin(a.login.State())
	case screens.RouteRegister:
		text = screens.RenderRegister(a.register.State())
	case screens.RouteProfile:
		text = screens.RenderProfile(a.profile.State(), a.now())
	}
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprint(a.out, text)
}
