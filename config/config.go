// Package config loads CLI settings from flags, INSIGHT_* environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	EnvPrefix      = "INSIGHT"
	configDirName  = ".insight"
	configFileName = "config.yaml"
)

// Output formats for raw documents
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	URL          string `mapstructure:"URL" envDefault:"http://localhost:3001/api" envInfo:"Insight API base URL"`
	Timeout      uint32 `mapstructure:"TIMEOUT" envDefault:"30" envInfo:"Request timeout in seconds"`
	ThrowOnNotOk bool   `mapstructure:"THROW_ON_NOT_OK" envDefault:"true" envInfo:"Fail on non-2xx responses instead of printing the body"`
	LogLevel     string `mapstructure:"LOG_LEVEL" envDefault:"info" envInfo:"Log level: trace | debug | info | warn | error"`
	Output       string `mapstructure:"OUTPUT" envDefault:"json" envInfo:"Document output format: json | yaml"`
}

// NewViper returns a viper instance with defaults and env bindings for every
// Config field. Callers may bind flags on top before LoadConfig.
func NewViper() (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := setDefaultConfig(v); err != nil {
		return nil, fmt.Errorf("error setting default config: %w", err)
	}
	return v, nil
}

// LoadConfig merges configFile (or the default file, when present) into v and
// decodes the result. An explicit configFile must exist.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	path := configFile
	if path == "" {
		path = DefaultConfigFile()
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
			}
			log.Debugf("configuration loaded from %s", path)
		} else if configFile != "" || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid insight url (config key: url): '%s'", c.URL)
	}
	if c.Timeout == 0 {
		return errors.New("timeout (config key: timeout) must be greater than 0")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level (config key: log_level): '%s'", c.LogLevel)
	}
	switch strings.ToLower(c.Output) {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output format (config key: output): '%s', must be one of: json, yaml", c.Output)
	}
	return nil
}

// DefaultConfigFile returns ~/.insight/config.yaml, or "" without a home directory
func DefaultConfigFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, configDirName, configFileName)
}

// SaveURL persists the base URL into the YAML file at path, keeping any
// other settings already stored there.
func SaveURL(path, baseURL string) error {
	if path == "" {
		path = DefaultConfigFile()
	}
	if path == "" {
		return errors.New("failed to locate home directory")
	}

	settings := map[string]any{}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
		if settings == nil {
			settings = map[string]any{}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	settings["url"] = baseURL

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EnvDoc lists the supported environment variables with defaults
func EnvDoc() []string {
	var lines []string
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		lines = append(lines, fmt.Sprintf("%s_%s (default %q): %s",
			EnvPrefix, f.Tag.Get("mapstructure"), f.Tag.Get("envDefault"), f.Tag.Get("envInfo")))
	}
	return lines
}

func setDefaultConfig(v *viper.Viper) error {
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key := f.Tag.Get("mapstructure")
		def := f.Tag.Get("envDefault")
		if def != "" {
			v.SetDefault(key, def)
		}
		err := v.BindEnv(key)
		if err != nil {
			return fmt.Errorf("error binding env variable for key %s: %w", key, err)
		}
	}
	return nil
}
