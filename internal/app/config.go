package app

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// Documented defaults, applied both through viper and by Normalize when a
// config file carries a malformed value.
const (
	DefaultBruteForceThreshold       = 3
	DefaultTimeWindowThreshold       = 5
	DefaultTimeWindowMinutes         = 5
	DefaultMultipleUsernameThreshold = 3
)

// DetectionConfig holds the three detector thresholds.
type DetectionConfig struct {
	BruteForceThreshold       int `mapstructure:"brute_force_threshold"`
	TimeWindowThreshold       int `mapstructure:"time_window_threshold"`
	TimeWindowMinutes         int `mapstructure:"time_window_minutes"`
	MultipleUsernameThreshold int `mapstructure:"multiple_username_threshold"`
}

// Config is the full analyzer configuration. Detectors never see an invalid
// value: Load normalizes everything once, before the core runs.
type Config struct {
	Detection           DetectionConfig `mapstructure:"detection"`
	FailedLoginKeywords []string        `mapstructure:"failed_login_keywords"`
	LogLevel            string          `mapstructure:"log_level"`
}

// SetDefaults registers every config key with its documented default.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("detection.brute_force_threshold", DefaultBruteForceThreshold)
	v.SetDefault("detection.time_window_threshold", DefaultTimeWindowThreshold)
	v.SetDefault("detection.time_window_minutes", DefaultTimeWindowMinutes)
	v.SetDefault("detection.multiple_username_threshold", DefaultMultipleUsernameThreshold)
	v.SetDefault("failed_login_keywords", domain.DefaultFailureKeywords)
	v.SetDefault("log_level", "info")
}

// Load unmarshals and normalizes the configuration from a viper instance.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps malformed values back to their documented defaults.
// A non-positive threshold or an empty keyword list is a config error, not a
// reason to fail the run.
func (c *Config) Normalize() {
	c.Detection.BruteForceThreshold = positiveOrDefault(
		c.Detection.BruteForceThreshold, DefaultBruteForceThreshold, "detection.brute_force_threshold")
	c.Detection.TimeWindowThreshold = positiveOrDefault(
		c.Detection.TimeWindowThreshold, DefaultTimeWindowThreshold, "detection.time_window_threshold")
	c.Detection.TimeWindowMinutes = positiveOrDefault(
		c.Detection.TimeWindowMinutes, DefaultTimeWindowMinutes, "detection.time_window_minutes")
	c.Detection.MultipleUsernameThreshold = positiveOrDefault(
		c.Detection.MultipleUsernameThreshold, DefaultMultipleUsernameThreshold, "detection.multiple_username_threshold")

	if len(c.FailedLoginKeywords) == 0 {
		log.Warn().Str("field", "failed_login_keywords").Msg("Empty keyword list, using defaults")
		c.FailedLoginKeywords = append([]string(nil), domain.DefaultFailureKeywords...)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func positiveOrDefault(value, fallback int, field string) int {
	if value > 0 {
		return value
	}
	log.Warn().Str("field", field).Int("value", value).Int("default", fallback).
		Msg("Invalid threshold, using default")
	return fallback
}
