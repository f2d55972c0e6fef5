// Package cli provides the interactive terminal client for the profile API.
//
// It wires configuration, the local session database, the HTTP API client,
// the screen state machines and a REPL. The active screen (login, register
// or profile) decides which commands apply; type "help" for the list.
//
// Typical flow: login (or register, then login), the client moves to the
// profile screen after a short delay, edit/save the profile, logout.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
