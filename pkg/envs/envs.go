// Package envs validates and normalizes the environment configuration a host
// application needs at startup.
//
// Validation is a pure function of an injected Snapshot, so callers can pass
// synthetic environments in tests. Production code typically calls Get once
// and treats the result as read-only for the lifetime of the process.
package envs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"go.trai.ch/zerr"
)

// ErrValidation is returned when required environment configuration is absent
// or malformed. It aggregates every field violation into one failure; the
// host process is expected to terminate rather than run with invalid
// configuration.
var ErrValidation = zerr.New("environment validation failed")

// Snapshot is a raw view of the process environment at the moment validation
// runs. It is never mutated.
type Snapshot map[string]string

// EnvironSnapshot captures the current process environment.
func EnvironSnapshot() Snapshot {
	environ := os.Environ()
	snap := make(Snapshot, len(environ))
	for _, entry := range environ {
		if k, v, ok := strings.Cut(entry, "="); ok {
			snap[k] = v
		}
	}
	return snap
}

// Config is the validated, typed configuration object. Once produced it is
// the single source of truth for these settings; consumers must not re-read
// the raw environment for them.
type Config struct {
	Port        int
	NatsServers []string
	DBURI       string
}

// field pairs one declared environment variable with its parser. Each entry
// maps to exactly one Config field; adding a schema field means adding both
// a struct field and an entry here.
type field struct {
	name  string
	parse func(raw string, present bool, cfg *Config) error
}

var schema = []field{
	{name: "PORT", parse: parsePort},
	{name: "NATS_SERVERS", parse: parseNatsServers},
	{name: "DB_URI", parse: parseDBURI},
}

// New validates the snapshot against the schema and produces the normalized
// configuration. All violations are collected and reported as a single
// ErrValidation; no partial Config is returned on failure. Snapshot keys not
// declared in the schema are ignored.
func New(snap Snapshot) (*Config, error) {
	cfg := &Config{}

	var violations []string
	for _, f := range schema {
		raw, present := snap[f.name]
		if err := f.parse(raw, present, cfg); err != nil {
			violations = append(violations, fmt.Sprintf("%s: %s", f.name, err))
		}
	}

	if len(violations) > 0 {
		return nil, zerr.With(ErrValidation, "violations", strings.Join(violations, "; "))
	}

	return cfg, nil
}

// Load optionally preloads a .env file from the working directory, then
// validates the resulting process environment. A missing .env file is not an
// error; values already present in the process environment win over file
// values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.Wrap(err, "failed to load .env file")
	}
	return New(EnvironSnapshot())
}

var (
	loadOnce sync.Once
	loaded   *Config
	loadErr  error
)

// Get returns the process-wide configuration, computing it once on first
// call. Every caller sees the same Config value; treat it as read-only.
func Get() (*Config, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Load()
	})
	return loaded, loadErr
}

func parsePort(raw string, present bool, cfg *Config) error {
	if !present {
		return errors.New("required but not set")
	}
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("must be a number, got %q", raw)
	}
	cfg.Port = port
	return nil
}

func parseNatsServers(raw string, present bool, cfg *Config) error {
	if !present {
		return errors.New("required but not set")
	}
	// Split on commas preserving order; the value is a delimited list.
	cfg.NatsServers = strings.Split(raw, ",")
	return nil
}

func parseDBURI(raw string, present bool, cfg *Config) error {
	if !present {
		return errors.New("required but not set")
	}
	if raw == "" {
		return errors.New("must be a non-empty string")
	}
	cfg.DBURI = raw
	return nil
}
