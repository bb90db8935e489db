// Package config loads runtime settings from a YAML file and the environment.
package config

import (
	"os"
	"strconv"

	errorutil "github.com/projectdiscovery/utils/errors"
	"gopkg.in/yaml.v3"

	"paracheck/internal/customdict"
	"paracheck/internal/matcher"
	"paracheck/pkg/options"
)

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// Enabled reports whether extra words should be read from Redis.
func (r Redis) Enabled() bool { return r.Addr != "" }

type Config struct {
	Dictionary        string  `yaml:"dictionary"`
	Metric            string  `yaml:"metric"`
	SuggestionLimit   int     `yaml:"suggestion_limit"`
	SuggestionCutoff  float64 `yaml:"suggestion_cutoff"`
	AutoCorrectCutoff float64 `yaml:"autocorrect_cutoff"`
	HTTPAddr          string  `yaml:"http_addr"`
	Redis             Redis   `yaml:"redis"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Dictionary:        "paragraphs.txt",
		Metric:            options.DefaultOptions.Metric,
		SuggestionLimit:   options.DefaultOptions.SuggestionLimit,
		SuggestionCutoff:  options.DefaultOptions.SuggestionCutoff,
		AutoCorrectCutoff: options.DefaultOptions.AutoCorrectCutoff,
		HTTPAddr:          ":8080",
		Redis:             Redis{Key: customdict.DefaultKey},
	}
}

// NewConfig reads config from file. Fields missing from the file keep
// their defaults.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample writes the defaults to filePath.
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// ApplyEnv overrides fields from DICTIONARY_PATH, SIMILARITY_METRIC,
// HTTP_ADDR and the REDIS_* variables when they are set.
func (c *Config) ApplyEnv() {
	c.Dictionary = getenv("DICTIONARY_PATH", c.Dictionary)
	c.Metric = getenv("SIMILARITY_METRIC", c.Metric)
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
	c.Redis.Addr = getenv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getenv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)
	c.Redis.Key = getenv("REDIS_KEY", c.Redis.Key)
}

// Validate checks the settings that would otherwise fail at request time.
func (c *Config) Validate() error {
	if c.Dictionary == "" {
		return errorutil.NewWithTag("config", "dictionary path is required")
	}
	if _, err := matcher.ParseMetric(c.Metric); err != nil {
		return err
	}
	if c.SuggestionLimit <= 0 {
		return errorutil.NewWithTag("config", "suggestion_limit must be > 0, got %d", c.SuggestionLimit)
	}
	for name, v := range map[string]float64{
		"suggestion_cutoff":  c.SuggestionCutoff,
		"autocorrect_cutoff": c.AutoCorrectCutoff,
	} {
		if v < 0 || v > 1 {
			return errorutil.NewWithTag("config", "%s must be within [0,1], got %v", name, v)
		}
	}
	return nil
}

// Options converts the matcher settings to corrector options.
func (c *Config) Options() []options.Options {
	return []options.Options{
		options.WithMetric(c.Metric),
		options.WithSuggestionLimit(c.SuggestionLimit),
		options.WithSuggestionCutoff(c.SuggestionCutoff),
		options.WithAutoCorrectCutoff(c.AutoCorrectCutoff),
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
