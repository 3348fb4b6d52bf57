package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend names accepted by DATA_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Port        string
	Environment string
	DataBackend string
	SiteURL     string
	CORSOrigins string

	// Relational store. DatabaseURL carries the elevated service credential
	// used for mutations; DatabaseReadOnlyURL the restricted one used by
	// public listings.
	DatabaseURL         string
	DatabaseReadOnlyURL string
	AutoMigrate         bool

	// Identity provider
	AuthJWKSURL  string
	AuthIssuer   string
	AuthAudience string

	SMTP    SMTPConfig
	Storage StorageConfig

	LogDir      string
	LogMaxFiles int

	// NotifyTimeout bounds one background email delivery.
	NotifyTimeout time.Duration
}

// SMTPConfig is the mail transport used by the notification hook.
type SMTPConfig struct {
	Host      string
	Port      int
	User      string
	Pass      string
	FromEmail string
	Secure    bool // implicit TLS (port 465); otherwise STARTTLS when offered
}

// Missing lists the SMTP variables that are unset. Mail falls back to
// log-only delivery while any is missing.
func (c SMTPConfig) Missing() []string {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.Port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if c.User == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.Pass == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if c.FromEmail == "" {
		missing = append(missing, "SMTP_FROM_EMAIL")
	}
	return missing
}

// StorageConfig points at the S3-compatible bucket that holds uploads.
type StorageConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string // base URL objects are served from
}

// Configured reports whether uploads can be enabled.
func (c StorageConfig) Configured() bool {
	return c.Bucket != "" && c.PublicURL != ""
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	projectID := getEnv("FIREBASE_PROJECT_ID", "")

	issuer := getEnv("AUTH_ISSUER", "")
	if issuer == "" && projectID != "" {
		issuer = "https://securetoken.google.com/" + projectID
	}

	databaseURL := getEnv("DATABASE_URL", "")

	return &Config{
		Port:                getEnv("PORT", "8080"),
		Environment:         env,
		DataBackend:         getEnv("DATA_BACKEND", BackendPostgres),
		SiteURL:             strings.TrimRight(getEnv("SITE_URL", "http://localhost:3000"), "/"),
		CORSOrigins:         getEnv("CORS_ORIGINS", "http://localhost:3000"),
		DatabaseURL:         databaseURL,
		DatabaseReadOnlyURL: getEnv("DATABASE_READONLY_URL", ""),
		AutoMigrate:         getEnv("AUTO_MIGRATE", getDefaultAutoMigrate(env)) == "true",
		AuthJWKSURL: getEnv("AUTH_JWKS_URL",
			"https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"),
		AuthIssuer:   issuer,
		AuthAudience: getEnv("AUTH_AUDIENCE", projectID),
		SMTP: SMTPConfig{
			Host:      getEnv("SMTP_HOST", ""),
			Port:      getEnvInt("SMTP_PORT", 0),
			User:      getEnv("SMTP_USER", ""),
			Pass:      getEnv("SMTP_PASS", ""),
			FromEmail: getEnv("SMTP_FROM_EMAIL", ""),
			Secure:    getEnv("SMTP_SECURE", "false") == "true",
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
			Region:    getEnv("STORAGE_REGION", "auto"),
			Bucket:    getEnv("STORAGE_BUCKET", ""),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
			PublicURL: strings.TrimRight(getEnv("STORAGE_PUBLIC_URL", ""), "/"),
		},
		LogDir:        getEnv("LOG_DIR", ""),
		LogMaxFiles:   getEnvInt("LOG_MAX_FILES", 10),
		NotifyTimeout: time.Duration(getEnvInt("NOTIFY_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

// Missing lists required variables that are unset for the selected backend.
// The server refuses to start while this is non-empty.
func (c *Config) Missing() []string {
	var missing []string
	if c.DataBackend == BackendPostgres && c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.AuthJWKSURL == "" {
		missing = append(missing, "AUTH_JWKS_URL")
	}
	if c.AuthIssuer == "" {
		missing = append(missing, "AUTH_ISSUER (or FIREBASE_PROJECT_ID)")
	}
	if c.AuthAudience == "" {
		missing = append(missing, "AUTH_AUDIENCE (or FIREBASE_PROJECT_ID)")
	}
	return missing
}

// ReadOnlyURL returns the credential for public reads, falling back to the
// service credential. fellBack reports whether the fallback was used.
func (c *Config) ReadOnlyURL() (url string, fellBack bool) {
	if c.DatabaseReadOnlyURL != "" {
		return c.DatabaseReadOnlyURL, false
	}
	return c.DatabaseURL, true
}

// getDefaultAutoMigrate returns the default migration behaviour based on environment
func getDefaultAutoMigrate(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
