// Package config loads runtime configuration for the profile client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-r int      redirect delay after a successful login or registration (milliseconds)
//	-s string   session database file
//	-l string   log level
//	-f string   log format (text, json, console)
//
// # JSON schema
//
// Durations can be strings like "2s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://techtest.youapp.ai",
//	  "request_timeout": "10s",
//	  "redirect_delay": "2s",
//	  "notice_ttl": "3s",
//	  "session_db": "session.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
