package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	NotProvided     = "Not provided"
	UnknownUser     = "Unknown User"
	NoEmailProvided = "No email provided"
)

var birthdayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z",
	"02-01-2006",
}

// ParseBirthday accepts the date-only form produced by the edit screen and
// the timestamp forms the server may echo back.
func ParseBirthday(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range birthdayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Age returns the full years between birthday and now, and false when the
// birthday is missing or unparseable.
func Age(birthday string, now time.Time) (int, bool) {
	b, ok := ParseBirthday(birthday)
	if !ok {
		return 0, false
	}
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return age, true
}

// FormatBirthday renders a birthday as "January 2, 2006". Missing values
// render as NotProvided, unparseable ones as given.
func FormatBirthday(birthday string) string {
	if strings.TrimSpace(birthday) == "" {
		return NotProvided
	}
	b, ok := ParseBirthday(birthday)
	if !ok {
		return birthday
	}
	return b.Format("January 2, 2006")
}

// Initial is the avatar letter: the upper-cased first letter of the
// username, "U" when there is none.
func (p *Profile) Initial() string {
	if p == nil || p.Username == "" {
		return "U"
	}
	r := []rune(p.Username)
	return strings.ToUpper(string(r[0]))
}

// DisplayName is the username or UnknownUser.
func (p *Profile) DisplayName() string {
	if p == nil || p.Username == "" {
		return UnknownUser
	}
	return p.Username
}

// DisplayEmail is the email or NoEmailProvided.
func (p *Profile) DisplayEmail() string {
	if p == nil || p.Email == "" {
		return NoEmailProvided
	}
	return p.Email
}

// DisplayText renders an optional text field, NotProvided when empty.
func DisplayText(s *string) string {
	if s == nil || *s == "" {
		return NotProvided
	}
	return *s
}

// DisplayMeasure renders "170 cm" style values; zero and absent values are
// NotProvided.
func DisplayMeasure(v *int, unit string) string {
	if v == nil || *v == 0 {
		return NotProvided
	}
	return fmt.Sprintf("%d %s", *v, unit)
}
