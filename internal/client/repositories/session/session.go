// Package session persists the login session: the bearer token and the
// user summary returned by the API.
package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
)

const (
	TokenKey = "access_token"
	UserKey  = "user"
)

// ErrNoSession is returned by Get when no token is stored. A stored user
// summary without a token does not count as a session.
var ErrNoSession = errors.New("no session")

// Session is a bearer token plus an optional user summary.
type Session struct {
	Token string
	User  *models.UserSummary
}

// Repository is the session store used by the screens. Set replaces the
// whole session: an empty Token or nil User removes that entry.
type Repository interface {
	Get(ctx context.Context) (Session, error)
	Set(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}
