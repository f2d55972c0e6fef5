package cli

import (
	"sync"

	"github.com/dmitrijs2005/gophprofile/internal/client/screens"
)

// Router tracks the active screen. It implements screens.Navigator; the
// enter hook runs after every switch, outside the lock.
type Router struct {
	mu      sync.Mutex
	current screens.Route
	enter   func(screens.Route)
}

func NewRouter(start screens.Route, enter func(screens.Route)) *Router {
	return &Router{current: start, enter: enter}
}

func (r *Router) Navigate(to screens.Route) {
	r.mu.Lock()
	r.current = to
	enter := r.enter
	r.mu.Unlock()

	if enter != nil {
		enter(to)
	}
}

func (r *Router) Current() screens.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
