package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

// Config holds runtime settings for the profile client.
type Config struct {
	// APIBaseURL is the scheme and host of the remote API, without /api.
	APIBaseURL string
	// RequestTimeout bounds every HTTP request.
	RequestTimeout time.Duration
	// RedirectDelay is how long a success message stays before navigation.
	RedirectDelay time.Duration
	// NoticeTTL is how long transient validation messages stay visible.
	NoticeTTL time.Duration
	// SessionDB is the SQLite file holding the session.
	SessionDB string
	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://techtest.youapp.ai"
	c.RequestTimeout = 10 * time.Second
	c.RedirectDelay = 2 * time.Second
	c.NoticeTTL = 3 * time.Second
	c.SessionDB = "session.db"
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// command-line flags. Later sources win. Malformed input panics.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
