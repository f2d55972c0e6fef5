// Package models defines the client-side records of GophProfile: form input
// for the login and register screens, the session user summary, the
// server-owned profile snapshot and the editable profile buffer.
//
// Validation here is purely local. Every rule returns a *ValidationError
// whose Message is shown to the user as is.
package models
