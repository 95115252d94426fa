package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config contains runtime configuration values.
type Config struct {
	NodeURL            string `env:"NODE_URL" validate:"required"`
	JWT                string `env:"JWT" validate:"required"`
	PageID             string `env:"PAGE_ID" validate:"required"`
	ConfluenceUsername string `env:"CONFLUENCE_USERNAME" validate:"required"`
	ConfluencePassword string `env:"CONFLUENCE_PASSWORD" validate:"required"`
	ConfluenceBaseURL  string `env:"CONFLUENCE_BASE_URL"`
	LogLevel           string `env:"LOG_LEVEL"`

	// Missing lists the required variables that were unset or empty, in
	// declaration order.
	Missing []string `env:"-"`
}

const (
	defaultConfluenceBaseURL = "https://hafslundnett.atlassian.net/wiki"
	defaultLogLevel          = "INFO"
)

// MissingError reports every required environment variable that is absent.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing env vars: %s", strings.Join(e.Names, ", "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := field.Tag.Get("env")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load builds a Config from environment variables. It never fails: absent
// required variables are collected in Missing so the caller decides.
func Load() *Config {
	return load(os.Getenv)
}

func load(getenv func(string) string) *Config {
	cfg := &Config{
		NodeURL:            getenv("NODE_URL"),
		JWT:                getenv("JWT"),
		PageID:             getenv("PAGE_ID"),
		ConfluenceUsername: getenv("CONFLUENCE_USERNAME"),
		ConfluencePassword: getenv("CONFLUENCE_PASSWORD"),
		ConfluenceBaseURL:  getenvDefault(getenv, "CONFLUENCE_BASE_URL", defaultConfluenceBaseURL),
		LogLevel:           getenvDefault(getenv, "LOG_LEVEL", defaultLogLevel),
	}
	cfg.Missing = missingFields(cfg)
	return cfg
}

// Validate returns a *MissingError when any required variable is absent.
func (c *Config) Validate() error {
	if len(c.Missing) == 0 {
		return nil
	}
	return &MissingError{Names: append([]string(nil), c.Missing...)}
}

func missingFields(cfg *Config) []string {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	return missing
}

func getenvDefault(getenv func(string) string, key, fallback string) string {
	if val := getenv(key); val != "" {
		return val
	}
	return fallback
}
