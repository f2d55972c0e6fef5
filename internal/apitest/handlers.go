package apitest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	var problems []string
	if strings.TrimSpace(req.Email) == "" {
		problems = append(problems, "email should not be empty")
	}
	if strings.TrimSpace(req.Username) == "" {
		problems = append(problems, "username should not be empty")
	}
	if req.Password == "" {
		problems = append(problems, "password should not be empty")
	}
	if len(problems) > 0 {
		writeError(w, http.StatusBadRequest, problems...)
		return
	}

	if _, err := s.Seed(req.Email, req.Username, req.Password); err != nil {
		writeError(w, http.StatusConflict, "User already exists")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User has been created successfully"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	u := s.lookup(req.Email, req.Username)
	if u == nil || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.IssueToken(u.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "User has been logged in successfully",
		"access_token": token,
		"user":         models.UserSummary{ID: u.ID, Email: u.Email, Username: u.Username},
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u, ok := s.users[userID(r.Context())]
	var p models.Profile
	if ok {
		p = projection(u)
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile has been found successfully",
		"data":    p,
	})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	s.mu.Lock()
	u, ok := s.users[userID(r.Context())]
	if ok {
		if upd.Interests == nil {
			upd.Interests = []string{}
		}
		u.Profile = upd
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Profile has been updated successfully"})
}

// Seed creates a user directly and returns its id. Email and username are
// unique, compared case-insensitively.
func (s *Server) Seed(email, username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if normalize(u.Email) == normalize(email) || normalize(u.Username) == normalize(username) {
			return "", errUserExists
		}
	}
	id := uuid.NewString()
	s.users[id] = &user{
		ID:           id,
		Email:        strings.TrimSpace(email),
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
		Profile:      models.ProfileUpdate{Interests: []string{}},
	}
	return id, nil
}

// SetProfile overwrites the stored profile of a seeded user.
func (s *Server) SetProfile(id string, p models.ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.Profile = p
	}
}

// Profile returns the stored profile of a seeded user.
func (s *Server) Profile(id string) (models.ProfileUpdate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.ProfileUpdate{}, false
	}
	return u.Profile, true
}

func (s *Server) lookup(email, username string) *user {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if email != "" && normalize(u.Email) == normalize(email) {
			return u
		}
		if username != "" && normalize(u.Username) == normalize(username) {
			return u
		}
	}
	return nil
}

func projection(u *user) models.Profile {
	p := models.Profile{
		Email:     u.Email,
		Username:  u.Username,
		Interests: append([]string{}, u.Profile.Interests...),
	}
	if u.Profile.Name != "" {
		n := u.Profile.Name
		p.Name = &n
	}
	if u.Profile.Birthday != "" {
		b := u.Profile.Birthday
		p.Birthday = &b
		if sign, animal, ok := signs(b); ok {
			p.Horoscope = &sign
			p.Zodiac = &animal
		}
	}
	if u.Profile.Height > 0 {
		h := u.Profile.Height
		p.Height = &h
	}
	if u.Profile.Weight > 0 {
		wt := u.Profile.Weight
		p.Weight = &wt
	}
	return p
}
