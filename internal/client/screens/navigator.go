package screens

// Route names a screen.
type Route string

const (
	RouteLogin    Route = "/login"
	RouteRegister Route = "/register"
	RouteProfile  Route = "/profile"
)

// Navigator switches the active screen.
type Navigator interface {
	Navigate(r Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(Route)

func (f NavigatorFunc) Navigate(r Route) { f(r) }
