// Package config loads console settings from flags, the environment and an
// optional .env file. Flags win over the environment, the environment wins
// over .env, .env wins over defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/iudanet/devhub-admin/internal/logger"
)

// Environment variables
const (
	EnvServer    = "DEVHUB_SERVER"
	EnvDB        = "DEVHUB_DB"
	EnvHistoryDB = "DEVHUB_HISTORY_DB"
	EnvLoginURL  = "DEVHUB_LOGIN_URL"
	EnvLogLevel  = "DEVHUB_LOG_LEVEL"
	EnvTimeout   = "DEVHUB_TIMEOUT"
)

// Defaults
const (
	DefaultServerURL = "http://localhost:8080/api"
	DefaultDBPath    = "devhub-admin.db"
	DefaultHistoryDB = "devhub-admin-history.db"
	DefaultLogLevel  = "warn"
	DefaultTimeout   = 30 * time.Second

	// loginPage is appended to the site root when no login URL is configured
	loginPage = "/public/login.html"
)

// Config holds every setting of the console
type Config struct {
	ServerURL     string
	DBPath        string
	HistoryDBPath string
	LoginURL      string
	LogLevel      string
	LogFormat     string
	BackupDir     string
	// Args is the command followed by its arguments
	Args        []string
	Timeout     time.Duration
	ShowVersion bool
	NoColor     bool
}

// Command returns the command name, "" when none was given
func (c *Config) Command() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// CommandArgs returns the arguments after the command
func (c *Config) CommandArgs() []string {
	if len(c.Args) < 2 {
		return nil
	}
	return c.Args[1:]
}

// Load parses args (without the program name) using the process environment
// and ./.env
func Load(args []string) (*Config, error) {
	return load(args, ".env", os.LookupEnv)
}

func load(args []string, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	dotenv, err := readDotEnv(envFile)
	if err != nil {
		return nil, err
	}
	env := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		if v, ok := dotenv[key]; ok && v != "" {
			return v
		}
		return def
	}

	timeout := DefaultTimeout
	if raw := env(EnvTimeout, ""); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
	}

	cfg := &Config{}
	fs := flag.NewFlagSet("devhub-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.ServerURL, "server", env(EnvServer, DefaultServerURL), "API base URL")
	fs.StringVar(&cfg.DBPath, "db", env(EnvDB, DefaultDBPath), "Path to the session database")
	fs.StringVar(&cfg.HistoryDBPath, "history-db", env(EnvHistoryDB, DefaultHistoryDB), "Path to the backup history database")
	fs.StringVar(&cfg.LoginURL, "login-url", env(EnvLoginURL, ""), "Login page shown when the session ends")
	fs.StringVar(&cfg.LogLevel, "log-level", env(EnvLogLevel, DefaultLogLevel), "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", logger.FormatText, "Log format: text or json")
	fs.StringVar(&cfg.BackupDir, "backup-dir", ".", "Directory for exported backups")
	fs.DurationVar(&cfg.Timeout, "timeout", timeout, "HTTP request timeout")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored notifications")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	cfg.Args = fs.Args()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.LoginURL == "" {
		cfg.LoginURL = DefaultLoginURL(cfg.ServerURL)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("server URL must start with http:// or https://: %q", c.ServerURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// DefaultLoginURL derives the login page from the API base URL:
// the site root is the base URL without its trailing /api
func DefaultLoginURL(serverURL string) string {
	root := strings.TrimSuffix(strings.TrimRight(serverURL, "/"), "/api")
	return root + loginPage
}

// readDotEnv returns the variables of path; a missing file is not an error
func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}
