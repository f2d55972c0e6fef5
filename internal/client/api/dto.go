package api

import (
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
)

// Text decodes a JSON string or an array of strings. Validation failures
// come back with "message" as a list; they are joined with "; ".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*t = Text(strings.Join(list, "; "))
	return nil
}

// Envelope holds the fields every answer may carry.
type Envelope struct {
	Message Text `json:"message,omitempty"`
	Error   Text `json:"error,omitempty"`
}

// AuthResponse is the answer of login and register. Register never sets
// User.
type AuthResponse struct {
	Envelope
	AccessToken string              `json:"access_token,omitempty"`
	User        *models.UserSummary `json:"user,omitempty"`
}

// ProfileResponse is the answer of getProfile.
type ProfileResponse struct {
	Envelope
	Data *models.Profile `json:"data"`
}

// MessageResponse is the answer of updateProfile.
type MessageResponse struct {
	Envelope
}
