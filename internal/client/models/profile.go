package models

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/gophprofile/internal/common"
)

const (
	MaxInterests      = 10
	MaxInterestLength = 50
)

var interestRule = "max=" + strconv.Itoa(MaxInterestLength)

// Profile is the server-owned projection returned by getProfile. Optional
// fields are pointers so "absent" and "zero" stay distinguishable.
type Profile struct {
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	Interests []string `json:"interests"`
	Name      *string  `json:"name,omitempty"`
	Birthday  *string  `json:"birthday,omitempty"`
	Height    *int     `json:"height,omitempty"`
	Weight    *int     `json:"weight,omitempty"`
	Horoscope *string  `json:"horoscope,omitempty"`
	Zodiac    *string  `json:"zodiac,omitempty"`
}

// ProfileUpdate is both the edit buffer and the updateProfile payload. The
// payload always carries all five fields.
type ProfileUpdate struct {
	Name      string   `json:"name"`
	Birthday  string   `json:"birthday"`
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`
	Interests []string `json:"interests"`
}

// NewEditBuffer seeds an edit buffer from a snapshot. Missing optionals
// become empty/zero and a missing interests list becomes an empty one. A nil
// snapshot yields empty defaults. The interests slice is copied so edits
// never reach the snapshot.
func NewEditBuffer(p *Profile) ProfileUpdate {
	buf := ProfileUpdate{Interests: []string{}}
	if p == nil {
		return buf
	}
	buf.Name = deref(p.Name)
	buf.Birthday = deref(p.Birthday)
	if p.Height != nil {
		buf.Height = *p.Height
	}
	if p.Weight != nil {
		buf.Weight = *p.Weight
	}
	if p.Interests != nil {
		buf.Interests = slices.Clone(p.Interests)
	}
	return buf
}

// ParseMeasure reads the leading integer of a numeric field input, so
// "170cm" is 170 and "12.5" is 12. Input without leading digits, or out of
// int range, gives 0.
func ParseMeasure(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// AddInterest appends a trimmed interest. It fails, leaving the list
// untouched, when the value is blank, already present (exact match), would
// exceed MaxInterests or is longer than MaxInterestLength.
func (u *ProfileUpdate) AddInterest(raw string) error {
	interest := strings.TrimSpace(raw)
	if interest == "" {
		return ErrInterestBlank
	}
	if slices.Contains(u.Interests, interest) {
		return ErrInterestDuplicate
	}
	if len(u.Interests) >= MaxInterests {
		return ErrInterestsLimit
	}
	if validate.Var(interest, interestRule) != nil {
		return ErrInterestTooLong
	}
	u.Interests = append(u.Interests, interest)
	return nil
}

// RemoveInterest drops the interest at index. Out-of-range indexes are
// ignored.
func (u *ProfileUpdate) RemoveInterest(index int) {
	if index < 0 || index >= len(u.Interests) {
		return
	}
	u.Interests = slices.Delete(slices.Clone(u.Interests), index, index+1)
}

// Payload builds the full-replacement body: trimmed name, raw birthday and
// interests without blank entries.
func (u ProfileUpdate) Payload() ProfileUpdate {
	interests := make([]string, 0, len(u.Interests))
	for _, i := range u.Interests {
		if !common.IsBlank(i) {
			interests = append(interests, i)
		}
	}
	return ProfileUpdate{
		Name:      strings.TrimSpace(u.Name),
		Birthday:  u.Birthday,
		Height:    u.Height,
		Weight:    u.Weight,
		Interests: interests,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
