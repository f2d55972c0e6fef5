package screens

import (
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

const (
	DefaultRedirectDelay = 2 * time.Second
	DefaultNoticeTTL     = 3 * time.Second
)

// Options are shared by all screens. Zero values fall back to defaults.
type Options struct {
	Scheduler     Scheduler
	Navigator     Navigator
	RedirectDelay time.Duration
	NoticeTTL     time.Duration
	Logger        logging.Logger
}

func (o Options) withDefaults() Options {
	if o.Scheduler == nil {
		o.Scheduler = RealScheduler{}
	}
	if o.Navigator == nil {
		o.Navigator = NavigatorFunc(func(Route) {})
	}
	if o.RedirectDelay <= 0 {
		o.RedirectDelay = DefaultRedirectDelay
	}
	if o.NoticeTTL <= 0 {
		o.NoticeTTL = DefaultNoticeTTL
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	return o
}

// Status is the request state of the login and register screens.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}
