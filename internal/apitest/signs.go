package apitest

import (
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
)

type signRange struct {
	name       string
	month, day int
}

// western signs keyed by their first day; the list wraps around the year.
var horoscopes = []signRange{
	{"Capricorn", 1, 1},
	{"Aquarius", 1, 20},
	{"Pisces", 2, 19},
	{"Aries", 3, 21},
	{"Taurus", 4, 20},
	{"Gemini", 5, 21},
	{"Cancer", 6, 22},
	{"Leo", 7, 23},
	{"Virgo", 8, 23},
	{"Libra", 9, 23},
	{"Scorpio", 10, 24},
	{"Sagittarius", 11, 22},
	{"Capricorn", 12, 22},
}

var animals = []string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// signs derives the western sign and the Chinese zodiac animal of a
// birthday. The animal uses the calendar year.
func signs(birthday string) (string, string, bool) {
	t, ok := models.ParseBirthday(birthday)
	if !ok {
		return "", "", false
	}
	return horoscope(t), animal(t.Year()), true
}

func horoscope(t time.Time) string {
	name := horoscopes[0].name
	for _, r := range horoscopes {
		if int(t.Month()) > r.month || (int(t.Month()) == r.month && t.Day() >= r.day) {
			name = r.name
		}
	}
	return name
}

func animal(year int) string {
	i := (year - 1900) % 12
	if i < 0 {
		i += 12
	}
	return animals[i]
}
