package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophprofile/internal/flagx"
	"github.com/dmitrijs2005/gophprofile/internal/timex"
)

// JsonConfig is the file form of Config. Durations use timex.Duration, so
// "2s" and integer nanoseconds both work. Absent keys keep the current
// value.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	RedirectDelay  *timex.Duration `json:"redirect_delay"`
	NoticeTTL      *timex.Duration `json:"notice_ttl"`
	SessionDB      *string         `json:"session_db"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
}

// parseJson overlays cfg with the file named by -c or -config. Without one
// it does nothing. Read and decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.SessionDB, jc.SessionDB)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RedirectDelay != nil {
		cfg.RedirectDelay = jc.RedirectDelay.Duration
	}
	if jc.NoticeTTL != nil {
		cfg.NoticeTTL = jc.NoticeTTL.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
