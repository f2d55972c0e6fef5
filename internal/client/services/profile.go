package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophprofile/internal/client/api"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/client/repositories/session"
	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

const MsgProfileUpdated = "Profile updated successfully!"

// ProfileService reads and replaces the profile of the logged-in user.
type ProfileService interface {
	// Fetch returns the profile. A missing token yields ErrNoToken; a 401
	// clears the session and yields ErrSessionExpired.
	Fetch(ctx context.Context) (*models.Profile, error)
	// Update sends the payload form of the edit buffer as a full replace and
	// returns the success message.
	Update(ctx context.Context, u models.ProfileUpdate) (string, error)
}

type profileService struct {
	client   api.Client
	sessions session.Repository
	log      logging.Logger
}

func NewProfileService(client api.Client, sessions session.Repository, log logging.Logger) ProfileService {
	if log == nil {
		log = logging.Nop()
	}
	return &profileService{client: client, sessions: sessions, log: log}
}

func (p *profileService) token(ctx context.Context) (string, error) {
	s, err := p.sessions.Get(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return "", userError(MsgNoAccessToken, ErrNoToken)
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	return s.Token, nil
}

func (p *profileService) Fetch(ctx context.Context) (*models.Profile, error) {
	token, err := p.token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.GetProfile(ctx, token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if cerr := p.sessions.Clear(ctx); cerr != nil {
				p.log.Error(ctx, "clear session failed", "err", cerr)
			}
			return nil, userError(MsgSessionExpired, errors.Join(ErrSessionExpired, err))
		}
		if re, ok := api.AsResponseError(err); ok {
			return nil, userError(fmt.Sprintf("Failed to fetch profile: %d", re.Status), err)
		}
		p.log.Warn(ctx, "fetch profile failed", "err", err)
		return nil, networkError(err)
	}
	if resp.Data == nil {
		p.log.Warn(ctx, "profile answer without data")
		return nil, networkError(api.ErrBadResponse)
	}
	return resp.Data, nil
}

func (p *profileService) Update(ctx context.Context, u models.ProfileUpdate) (string, error) {
	token, err := p.token(ctx)
	if err != nil {
		return "", err
	}

	resp, err := p.client.UpdateProfile(ctx, token, u.Payload())
	if err != nil {
		if re, ok := api.AsResponseError(err); ok {
			return "", userError(firstNonEmpty(re.Message, fmt.Sprintf("Update failed: %d", re.Status)), err)
		}
		p.log.Warn(ctx, "update profile failed", "err", err)
		return "", networkError(err)
	}

	p.log.Info(ctx, "profile updated")
	return firstNonEmpty(string(resp.Message), MsgProfileUpdated), nil
}
