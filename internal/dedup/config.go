package dedup

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the thresholds for flagging a pair of submissions as a
// likely resubmission.
type Config struct {
	// MinEqual is the minimum number of fields that must agree exactly
	// for a pair to be flagged. Higher values = fewer false positives.
	// Default: 10.
	MinEqual int

	// MaxDifferent is the maximum number of genuinely conflicting
	// fields a flagged pair may have. Fields empty on either side are
	// neutral and count toward neither threshold.
	// Default: 10.
	MaxDifferent int
}

// DefaultConfig returns the default detector thresholds.
//
// The defaults are tuned for a survey of ~70 questions: a respondent
// editing an earlier submission typically repeats most answers
// verbatim and changes only a handful.
func DefaultConfig() Config {
	return Config{
		MinEqual:     10,
		MaxDifferent: 10,
	}
}

// ConfigFromEnv returns the default configuration with any
// SURVEYCTL_DEDUP_* environment overrides applied.
//
// Supported variables:
//   - SURVEYCTL_DEDUP_MIN_EQUAL: minimum exactly-agreeing fields
//   - SURVEYCTL_DEDUP_MAX_DIFFERENT: maximum conflicting fields
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if v := os.Getenv("SURVEYCTL_DEDUP_MIN_EQUAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SURVEYCTL_DEDUP_MIN_EQUAL: %w", err)
		}
		cfg.MinEqual = n
	}
	if v := os.Getenv("SURVEYCTL_DEDUP_MAX_DIFFERENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SURVEYCTL_DEDUP_MAX_DIFFERENT: %w", err)
		}
		cfg.MaxDifferent = n
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks if the configuration has valid values
func (c Config) Validate() error {
	if c.MinEqual < 0 {
		return fmt.Errorf("min_equal cannot be negative (got %d)", c.MinEqual)
	}
	if c.MaxDifferent < 0 {
		return fmt.Errorf("max_different cannot be negative (got %d)", c.MaxDifferent)
	}
	return nil
}
