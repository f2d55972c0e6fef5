package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
)

const masked = "********"

func RenderLogin(st LoginState) string {
	var b strings.Builder
	b.WriteString("== Login ==\n")
	fmt.Fprintf(&b, "  email:    %s\n", st.Form.Email)
	fmt.Fprintf(&b, "  username: %s\n", st.Form.Username)
	fmt.Fprintf(&b, "  password: %s\n", mask(st.Form.Password))
	writeStatus(&b, st.Status, st.Message)
	if st.Alert != "" {
		fmt.Fprintf(&b, "  [alert] %s\n", st.Alert)
	}
	return b.String()
}

func RenderRegister(st RegisterState) string {
	var b strings.Builder
	b.WriteString("== Register ==\n")
	fmt.Fprintf(&b, "  email:    %s\n", st.Form.Email)
	fmt.Fprintf(&b, "  username: %s\n", st.Form.Username)
	fmt.Fprintf(&b, "  password: %s\n", mask(st.Form.Password))
	writeStatus(&b, st.Status, st.Message)
	return b.String()
}

func writeStatus(b *strings.Builder, st Status, msg string) {
	switch st {
	case StatusLoading:
		b.WriteString("  ... please wait\n")
	case StatusError:
		fmt.Fprintf(b, "  error: %s\n", msg)
	case StatusSuccess:
		fmt.Fprintf(b, "  %s\n", msg)
	}
}

func mask(pw string) string {
	if pw == "" {
		return ""
	}
	return masked
}

// RenderProfile renders the view or the edit form depending on the status.
// now is used for the age.
func RenderProfile(st ProfileState, now time.Time) string {
	var b strings.Builder
	b.WriteString("== Profile ==\n")

	switch st.Status {
	case ProfileLoading:
		b.WriteString("  Loading profile...\n")
		return b.String()
	case ProfileError:
		fmt.Fprintf(&b, "  error: %s\n", st.Error)
		return b.String()
	}

	p := st.Profile
	fmt.Fprintf(&b, "  (%s) %s\n", p.Initial(), p.DisplayName())
	fmt.Fprintf(&b, "      %s\n", p.DisplayEmail())

	if st.Status == ProfileEditing || st.Status == ProfileSaving {
		renderEdit(&b, st)
		return b.String()
	}

	if st.Notice != "" {
		fmt.Fprintf(&b, "  %s\n", st.Notice)
	}
	renderAbout(&b, p, now)
	renderInterests(&b, p)
	return b.String()
}

func renderAbout(b *strings.Builder, p *models.Profile, now time.Time) {
	b.WriteString("  About\n")
	fmt.Fprintf(b, "    Name:      %s\n", models.DisplayText(p.Name))

	birthday := ""
	if p != nil && p.Birthday != nil {
		birthday = *p.Birthday
	}
	line := models.FormatBirthday(birthday)
	if age, ok := models.Age(birthday, now); ok && age > 0 {
		line = fmt.Sprintf("%s (Age %d)", line, age)
	}
	fmt.Fprintf(b, "    Birthday:  %s\n", line)

	if p != nil && p.Horoscope != nil && *p.Horoscope != "" {
		fmt.Fprintf(b, "    Horoscope: %s\n", *p.Horoscope)
	}
	if p != nil && p.Zodiac != nil && *p.Zodiac != "" {
		fmt.Fprintf(b, "    Zodiac:    %s\n", *p.Zodiac)
	}

	var height, weight *int
	if p != nil {
		height, weight = p.Height, p.Weight
	}
	fmt.Fprintf(b, "    Height:    %s\n", models.DisplayMeasure(height, "cm"))
	fmt.Fprintf(b, "    Weight:    %s\n", models.DisplayMeasure(weight, "kg"))
}

func renderInterests(b *strings.Builder, p *models.Profile) {
	var interests []string
	if p != nil {
		interests = p.Interests
	}
	fmt.Fprintf(b, "  Interests (%d)\n", len(interests))
	if len(interests) == 0 {
		b.WriteString("    No interests added yet\n")
		return
	}
	for _, i := range interests {
		fmt.Fprintf(b, "    - %s\n", i)
	}
}

func renderEdit(b *strings.Builder, st ProfileState) {
	e := st.Edit
	b.WriteString("  Edit profile\n")
	fmt.Fprintf(b, "    name:     %s\n", e.Name)
	fmt.Fprintf(b, "    birthday: %s\n", e.Birthday)
	fmt.Fprintf(b, "    height:   %d\n", e.Height)
	fmt.Fprintf(b, "    weight:   %d\n", e.Weight)
	fmt.Fprintf(b, "    interests (%d/%d):\n", len(e.Interests), models.MaxInterests)
	for i, v := range e.Interests {
		fmt.Fprintf(b, "      [%d] %s\n", i, v)
	}
	if len(e.Interests) >= models.MaxInterests {
		b.WriteString("    Maximum interests reached\n")
	}
	if st.InterestError != "" {
		fmt.Fprintf(b, "    ! %s\n", st.InterestError)
	}
	if st.Status == ProfileSaving {
		b.WriteString("    Saving...\n")
	}
	if st.Error != "" {
		fmt.Fprintf(b, "    error: %s\n", st.Error)
	}
}
