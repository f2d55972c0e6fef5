package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophprofile/internal/dbx"
)

// SQLiteRepository keeps the session as two metadata entries, TokenKey and
// UserKey (JSON). Writes of both entries share one transaction.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (Session, error) {
	repo := metadata.NewSQLiteRepository(r.db)

	token, err := repo.Get(ctx, TokenKey)
	if errors.Is(err, metadata.ErrNotFound) || (err == nil && len(token) == 0) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, err
	}

	s := Session{Token: string(token)}

	raw, err := repo.Get(ctx, UserKey)
	switch {
	case errors.Is(err, metadata.ErrNotFound):
		return s, nil
	case err != nil:
		return Session{}, err
	}

	var u models.UserSummary
	if err := json.Unmarshal(raw, &u); err != nil {
		return Session{}, fmt.Errorf("decode stored user: %w", err)
	}
	s.User = &u
	return s, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, s Session) error {
	var user []byte
	if s.User != nil {
		b, err := json.Marshal(s.User)
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		user = b
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		if s.Token != "" {
			if err := repo.Set(ctx, TokenKey, []byte(s.Token)); err != nil {
				return err
			}
		} else if err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}

		if user != nil {
			return repo.Set(ctx, UserKey, user)
		}
		return repo.Delete(ctx, UserKey)
	})
}

// Clear removes both entries. Other metadata is left alone.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(r.db).Delete(ctx, TokenKey, UserKey)
}
