package screens

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/stretchr/testify/assert"
)

var renderNow = time.Date(2024, 7, 31, 10, 0, 0, 0, time.UTC)

func TestRenderProfile_View(t *testing.T) {
	out := RenderProfile(ProfileState{Status: ProfileReady, Profile: sampleProfile()}, renderNow)

	assert.Contains(t, out, "(A) ann")
	assert.Contains(t, out, "a@b.com")
	assert.Contains(t, out, "Name:      Ann")
	assert.Contains(t, out, "Birthday:  August 1, 1990 (Age 33)")
	assert.Contains(t, out, "Horoscope: Leo")
	assert.Contains(t, out, "Zodiac:    Horse")
	assert.Contains(t, out, "Height:    170 cm")
	assert.Contains(t, out, "Weight:    60 kg")
	assert.Contains(t, out, "Interests (2)")
	assert.Contains(t, out, "- Music")
}

func TestRenderProfile_Placeholders(t *testing.T) {
	out := RenderProfile(ProfileState{Status: ProfileReady, Profile: &models.Profile{}}, renderNow)

	assert.Contains(t, out, "(U) Unknown User")
	assert.Contains(t, out, "No email provided")
	assert.Contains(t, out, "Name:      Not provided")
	assert.Contains(t, out, "Birthday:  Not provided")
	assert.Contains(t, out, "Height:    Not provided")
	assert.Contains(t, out, "No interests added yet")
	assert.NotContains(t, out, "Horoscope")
}

func TestRenderProfile_UnparseableBirthday(t *testing.T) {
	p := &models.Profile{Username: "ann", Birthday: strp("someday")}
	out := RenderProfile(ProfileState{Status: ProfileReady, Profile: p}, renderNow)
	assert.Contains(t, out, "Birthday:  someday\n")
}

func TestRenderProfile_Edit(t *testing.T) {
	edit := models.ProfileUpdate{Name: "Ann", Interests: make([]string, 0, models.MaxInterests)}
	for range models.MaxInterests {
		edit.Interests = append(edit.Interests, "x")
	}
	out := RenderProfile(ProfileState{
		Status:        ProfileEditing,
		Profile:       sampleProfile(),
		Edit:          edit,
		InterestError: "Maximum 10 interests allowed",
	}, renderNow)

	assert.Contains(t, out, "name:     Ann")
	assert.Contains(t, out, "interests (10/10)")
	assert.Contains(t, out, "[9] x")
	assert.Contains(t, out, "Maximum interests reached")
	assert.Contains(t, out, "! Maximum 10 interests allowed")
}

func TestRenderProfile_LoadingAndError(t *testing.T) {
	assert.Contains(t, RenderProfile(ProfileState{}, renderNow), "Loading profile...")
	assert.Contains(t, RenderProfile(ProfileState{Status: ProfileError, Error: "boom"}, renderNow), "error: boom")
}

func TestRenderLogin(t *testing.T) {
	out := RenderLogin(LoginState{
		Form:    models.Credentials{Email: "a@b.com", Password: "secret"},
		Status:  StatusError,
		Message: "Invalid credentials",
		Alert:   AlertCheckCredentials,
	})
	assert.Contains(t, out, "email:    a@b.com")
	assert.Contains(t, out, "password: ********")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "error: Invalid credentials")
	assert.Contains(t, out, "[alert] Please check your email or password")
}

func TestRenderRegister(t *testing.T) {
	out := RenderRegister(RegisterState{Status: StatusSuccess, Message: "done"})
	assert.Contains(t, out, "== Register ==")
	assert.Contains(t, out, "  done\n")
}
