package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	appDir         = "taskboard"
	userConfigName = "config.toml"
	projectConfig  = "taskboard.toml"
	dotEnvFile     = ".env"
)

// Files names the optional files Load reads. Empty entries are skipped.
type Files struct {
	DotEnv  string
	User    string
	Project string
}

// DefaultFiles returns .env and taskboard.toml in the working directory
// plus <UserConfigDir>/taskboard/config.toml.
func DefaultFiles() Files {
	f := Files{DotEnv: dotEnvFile, Project: projectConfig}
	if dir, err := os.UserConfigDir(); err == nil {
		f.User = filepath.Join(dir, appDir, userConfigName)
	}
	return f
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. .env in the current directory (never overrides the real environment)
// 3. User config file
// 4. Project config file (taskboard.toml in current directory)
// 5. Environment variables
// 6. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	return LoadFiles(fs, args, DefaultFiles())
}

// LoadFiles is Load with explicit file locations.
func LoadFiles(fs *flag.FlagSet, args []string, files Files) (*Config, error) {
	cfg := Default()

	if files.DotEnv != "" {
		if err := godotenv.Load(files.DotEnv); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", files.DotEnv, err)
		}
	}

	for _, path := range []string{files.User, files.Project} {
		if path == "" {
			continue
		}
		if err := loadConfigFile(cfg, path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg.LogFile = expandPath(cfg.LogFile)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile decodes TOML into cfg. Keys the Config does not know are
// rejected so typos surface instead of being ignored.
func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// expandPath expands ~/ and environment variables.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
