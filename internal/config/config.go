// Package config loads client settings from defaults, a YAML file, a .env
// file, PARCEL_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultConfigFile     = "parcel.yaml"
	DefaultEnvFile        = ".env"
	DefaultStateFile      = ".parcel/state.yaml"
	DefaultTimeout        = 30 * time.Second
	DefaultCSRFCookieName = "csrftoken"
	envPrefix             = "PARCEL_"
)

// Output modes.
const (
	OutputAuto   = "auto"
	OutputSimple = "simple"
	OutputTUI    = "tui"
)

// Config holds every setting of the client.
type Config struct {
	BaseURL        string        `koanf:"base_url"`
	ProjectID      int64         `koanf:"project_id"`
	Cookie         string        `koanf:"cookie"`
	CSRFCookieName string        `koanf:"csrf_cookie_name"`
	Timeout        time.Duration `koanf:"timeout"`
	StatePath      string        `koanf:"state_path"`
	ExportDir      string        `koanf:"export_dir"`
	Output         string        `koanf:"output"`
	LogLevel       string        `koanf:"log_level"`
	LogFormat      string        `koanf:"log_format"`

	// File is the config file that was read, or "" when none was.
	File string `koanf:"-"`
}

// Load reads the configuration.
// Precedence (highest to lowest): flags > env vars (.env included) > config file > defaults.
// An explicit cfgFile must exist; the default one is optional.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"csrf_cookie_name": DefaultCSRFCookieName,
		"timeout":          DefaultTimeout.String(),
		"state_path":       DefaultStateFile,
		"export_dir":       ".",
		"output":           OutputAuto,
		"log_level":        "warn",
		"log_format":       "text",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// Variables already set in the environment win over the .env file.
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading %s: %w", DefaultEnvFile, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey(flags)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.File = used

	return &cfg, nil
}

// flagKey maps explicitly set flags onto config keys.
func flagKey(flags *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	renamed := map[string]string{
		"project": "project_id",
		"state":   "state_path",
		"dir":     "export_dir",
	}

	return func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}

		key := strings.ReplaceAll(f.Name, "-", "_")
		if mapped, ok := renamed[key]; ok {
			key = mapped
		}

		return key, posflag.FlagVal(flags, f)
	}
}

func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}

		return explicit, nil
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, nil
	}

	return "", nil
}

// Validate rejects settings no command can work with. A missing project id
// is not an error here; saving reports it.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("base_url is required (set it in parcel.yaml, PARCEL_BASE_URL or --base-url)")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}

	switch c.Output {
	case OutputAuto, OutputSimple, OutputTUI:
	default:
		return fmt.Errorf("output must be one of %s, %s, %s; got %q", OutputAuto, OutputSimple, OutputTUI, c.Output)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}

	return nil
}
