// Package portalctl holds the non-command parts of the portalctl admin CLI:
// its config file and collection lookup.
package portalctl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Environment overrides, applied after the file is read.
const (
	EnvAPIURL = "PORTAL_API_URL"
	EnvToken  = "PORTAL_TOKEN"
)

// Config is the portalctl configuration.
type Config struct {
	APIURL string `toml:"api_url"`
	Token  string `toml:"token"`
	// DefaultFolder is the storage folder used when --folder is not given.
	DefaultFolder string `toml:"default_folder,omitempty"`
}

// DefaultPath returns ~/.config/portalctl/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "portalctl", "config.toml"), nil
}

// Read decodes a Config from r.
func Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes cfg to w.
func Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Load reads path, tolerating a missing file, then applies environment
// overrides. getenv is os.Getenv outside tests.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	f, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to open config file: %w", err)
	default:
		defer f.Close()
		cfg, err = Read(f)
		if err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	}

	if v := getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	return cfg, nil
}

// Validate reports missing connection settings.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url is not set (config file or %s)", EnvAPIURL)
	}
	if c.Token == "" {
		return fmt.Errorf("token is not set (config file or %s)", EnvToken)
	}
	return nil
}

// Init writes cfg to path. It refuses to overwrite an existing file.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	// The token is a credential
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}
