package catlog

import (
	"os"
	"strconv"
	"strings"
)

// Env:
//
//	CATLOG_DEBUG=1|true       : debug build; debug-only calls and DebugPrint are emitted
//	CATLOG_SUBSYSTEM=<string> : fixed subsystem for structured records (overrides BundleID)
const (
	EnvDebug     = "CATLOG_DEBUG"
	EnvSubsystem = "CATLOG_SUBSYSTEM"
)

// LoadEnv overlays environment settings onto cfg. A nil getenv uses os.Getenv.
func LoadEnv(cfg Config, getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvDebug); v != "" {
		cfg.Debug = ParseBool(v, cfg.Debug)
	}
	if v := strings.TrimSpace(getenv(EnvSubsystem)); v != "" {
		cfg.Identity = StaticIdentity(v)
	}
	return cfg
}

// ParseBool accepts strconv.ParseBool forms plus yes/no/on/off; anything else yields def.
func ParseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
		return b
	}
	return def
}
