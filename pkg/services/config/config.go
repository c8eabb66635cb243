package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/de-tools/boxoffice-atlas/pkg/store/kobis"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "BOXOFFICE"

	DefaultTimeout  = kobis.DefaultTimeout
	DefaultOutput   = "README.md"
	DefaultSchedule = "0 9 * * 1"
	DefaultAddr     = "127.0.0.1:8080"
)

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"target-date":         "target_date",
	"output":              "output.path",
	"destination":         "output.destination",
	"include-rank-change": "include_rank_change",
	"timeout":             "timeout",
	"schedule":            "schedule",
	"addr":                "server.addr",
	"log-level":           "log.level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", kobis.DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("target_date", "")
	v.SetDefault("include_rank_change", true)
	v.SetDefault("schedule", DefaultSchedule)
	v.SetDefault("output.destination", string(domain.DestinationFile))
	v.SetDefault("output.path", DefaultOutput)
	v.SetDefault("output.bucket", "")
	v.SetDefault("output.key", "")
	v.SetDefault("output.profile", "")
	v.SetDefault("output.region", "")
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
}

// Load builds the run configuration from defaults, an optional config file,
// the environment and any flags that were set explicitly, in rising priority.
func Load(path string, flags *pflag.FlagSet) (*domain.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", "API_KEY", "KOBIS_API_KEY", EnvPrefix+"_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints declared on domain.Config.
func Validate(cfg *domain.Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
}
