// Package screens holds the state machines behind the login, register and
// profile screens. Each screen guards its state with a mutex, allows one
// outstanding request at a time and reports delayed effects (navigation,
// expiry of transient messages) through an injected Scheduler.
//
// Screens know nothing about the terminal; rendering to text lives in
// render.go and input handling in package cli.
package screens
