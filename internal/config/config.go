package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bura/internal/submission"
)

const (
	defaultAppEnv          = "dev"
	defaultPort            = "8080"
	defaultCoachWhatsApp   = "254746110624"
	defaultWhatsAppBaseURL = "https://wa.me"
	defaultFailurePolicy   = string(submission.FailOpen)
	defaultSubmitAPIURL    = "http://localhost:8080"
	defaultReturnPlanSlug  = "false"
	defaultHandoffTTL      = "5m"
	defaultHandoffCapacity = "1024"
	defaultLogLevel        = "info"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	CoachWhatsApp   string
	WhatsAppBaseURL string
	FailurePolicy   submission.Policy
	SubmitAPIURL    string
	ReturnPlanSlug  bool
	HandoffTTL      time.Duration
	HandoffCapacity int
	CORSOrigins     []string
	LeadsToken      string
	LogLevel        string
}

// Load reads the runtime config from the environment.
func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(getEnv("APP_ENV", ""))
	if appEnv == "" {
		appEnv = strings.TrimSpace(getEnv("ENV", defaultAppEnv))
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", ""))
	cfg.CoachWhatsApp = strings.TrimPrefix(strings.TrimSpace(getEnv("COACH_WHATSAPP", defaultCoachWhatsApp)), "+")
	cfg.WhatsAppBaseURL = strings.TrimRight(strings.TrimSpace(getEnv("WHATSAPP_BASE_URL", defaultWhatsAppBaseURL)), "/")
	cfg.SubmitAPIURL = strings.TrimRight(strings.TrimSpace(getEnv("SUBMIT_API_URL", defaultSubmitAPIURL)), "/")
	cfg.ReturnPlanSlug = parseBoolEnv("RETURN_PLAN_SLUG", defaultReturnPlanSlug)
	cfg.LeadsToken = strings.TrimSpace(getEnv("LEADS_EXPORT_TOKEN", ""))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.CORSOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", ""))

	var err error
	cfg.FailurePolicy, err = submission.ParsePolicy(getEnv("SUBMIT_FAILURE_POLICY", defaultFailurePolicy))
	if err != nil {
		return nil, fmt.Errorf("invalid SUBMIT_FAILURE_POLICY: %w", err)
	}

	cfg.HandoffTTL, err = parseDurationEnv("HANDOFF_TTL", defaultHandoffTTL)
	if err != nil {
		return nil, err
	}

	cfg.HandoffCapacity, err = parseIntEnv("HANDOFF_CAPACITY", defaultHandoffCapacity)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StoreConfigured reports whether a lead database is set.
func (c *Config) StoreConfigured() bool {
	return c.DatabaseURL != ""
}

// RequireStore is the server-side check: a prod-like deployment must not
// start without a lead database.
func (c *Config) RequireStore() error {
	if c.IsProdLike() && !c.StoreConfigured() {
		return fmt.Errorf("in prod/release DATABASE_URL must be set")
	}
	return nil
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	if cfg.HandoffTTL <= 0 {
		return fmt.Errorf("HANDOFF_TTL must be > 0")
	}
	if cfg.HandoffCapacity <= 0 {
		return fmt.Errorf("HANDOFF_CAPACITY must be > 0")
	}
	if cfg.CoachWhatsApp == "" || strings.Trim(cfg.CoachWhatsApp, "0123456789") != "" {
		return fmt.Errorf("COACH_WHATSAPP must be digits only")
	}
	if err := validateBaseURL("WHATSAPP_BASE_URL", cfg.WhatsAppBaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("SUBMIT_API_URL", cfg.SubmitAPIURL); err != nil {
		return err
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if isProdLike(cfg.AppEnv) && !strings.HasPrefix(cfg.WhatsAppBaseURL, "https://") {
		return fmt.Errorf("in prod/release WHATSAPP_BASE_URL must use https")
	}
	return nil
}

func validateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", name, raw)
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
