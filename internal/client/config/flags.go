package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/flagx"
	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-r int      redirect delay (milliseconds)
//	-s string   session database file
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json, console)
//
// Only these flags are looked at, so -c/-config can share os.Args.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-r", "-s", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	redirect := fs.Int("r", int(cfg.RedirectDelay.Milliseconds()), "redirect delay after success (in milliseconds)")
	fs.StringVar(&cfg.SessionDB, "s", cfg.SessionDB, "session database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text, json or console")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// durations from JSON may be finer than the flag units; only touch them
	// when the flag was given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "r":
			cfg.RedirectDelay = time.Duration(*redirect) * time.Millisecond
		}
	})

	switch cfg.LogFormat {
	case logging.FormatText, logging.FormatJSON, logging.FormatConsole:
	default:
		panic(fmt.Errorf("unknown log format %q", cfg.LogFormat))
	}
}
