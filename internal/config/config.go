// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/idilsaglam/taskboard/internal/fetch"
)

// Default values.
const (
	DefaultEndpoint = fetch.DefaultEndpoint
	DefaultTheme    = "classic"
	DefaultDark     = "auto"
	DefaultLogLevel = "info"
)

// Config holds the full configuration for taskboard.
type Config struct {
	// Endpoint serves the todo collection as a JSON array.
	Endpoint string `toml:"endpoint" validate:"required,url"`

	// Appearance
	Theme string `toml:"theme" validate:"oneof=classic neon mono"`
	Dark  string `toml:"dark" validate:"oneof=auto on off"`

	// Logging configuration
	LogLevel string `toml:"log_level" validate:"oneof=debug info warn error"`
	LogFile  string `toml:"log_file"`

	// Group splits `ls` output into pending and done. Flag only.
	Group bool `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.Endpoint = DefaultEndpoint
	cfg.Theme = DefaultTheme
	cfg.Dark = DefaultDark
	cfg.LogLevel = DefaultLogLevel
}

// Default returns a Config holding only defaults.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

var validate = newValidator()

// newValidator reports fields by their toml key.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks field values and reports every problem at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "url":
		return fmt.Sprintf("%s %q is not a URL", name, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s %q must be one of: %s", name, fe.Value(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", name, fe.Tag())
}
