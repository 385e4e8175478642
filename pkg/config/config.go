package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/cbodonnell/bomberman/pkg/log"
	"github.com/joho/godotenv"
)

const (
	EnvServerURL      = "BOMBERMAN_SERVER_URL"
	EnvPreferencesURL = "BOMBERMAN_PREFERENCES_URL"
	EnvLogLevel       = "BOMBERMAN_LOG_LEVEL"

	DefaultServerURL      = "ws://localhost:8765"
	DefaultPreferencesURL = "sqlite://bomberman.db"
	DefaultLogLevel       = "info"
)

type Config struct {
	ServerURL      string
	PreferencesURL string
	LogLevel       log.LogLevel
	// DebugAddr enables the debug server when set
	DebugAddr  string
	RecordPath string
	Debug      bool
	Spectator  bool
	Headless   bool
}

// Load reads .env from the working directory, then the environment, then args.
func Load(args []string) (*Config, error) {
	return LoadFrom(".env", args)
}

// LoadFrom is Load with an explicit env file. Variables already set in the
// environment take precedence over the file, and flags over both.
func LoadFrom(envFile string, args []string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %v", envFile, err)
		}
		log.Debug("No %s file found, using environment variables", envFile)
	}

	fs := flag.NewFlagSet("bomberman", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	serverURL := fs.String("server-url", getenv(EnvServerURL, DefaultServerURL), "Game server websocket URL")
	preferencesURL := fs.String("preferences-url", getenv(EnvPreferencesURL, DefaultPreferencesURL), "Preference storage (sqlite://, postgresql://, memory://)")
	logLevel := fs.String("log-level", getenv(EnvLogLevel, DefaultLogLevel), "Log level")
	debugAddr := fs.String("debug-addr", "", "Address for the debug server, disabled when empty")
	recordPath := fs.String("record", "", "Record received frames to this file")
	debug := fs.Bool("debug", false, "Draw the debug overlay")
	spectator := fs.Bool("spectator", false, "Join as a spectator")
	headless := fs.Bool("headless", false, "Run without a window")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %v", err)
	}

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		return nil, err
	}
	if err := validateServerURL(*serverURL); err != nil {
		return nil, err
	}

	return &Config{
		ServerURL:      *serverURL,
		PreferencesURL: *preferencesURL,
		LogLevel:       parsedLogLevel,
		DebugAddr:      *debugAddr,
		RecordPath:     *recordPath,
		Debug:          *debug,
		Spectator:      *spectator,
		Headless:       *headless,
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func validateServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid server url %q: %v", raw, err)
	}
	switch u.Scheme {
	case "ws", "wss":
	default:
		return fmt.Errorf("invalid server url %q: scheme must be ws or wss", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid server url %q: missing host", raw)
	}
	return nil
}
