// Package config holds the pipeline configuration surface: directories,
// the master random seed, imputation constants, sampling caps, and the
// per-dataset layout of every raw source table.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/braid/internal/model"
)

// Config holds all braid configuration.
type Config struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	// Seed is the master random seed; every stage derives its own
	// sub-stream from it so re-runs are bit-identical.
	Seed        int64  `yaml:"seed"`
	JitterHours int    `yaml:"jitter_hours"`
	Fallback    string `yaml:"fallback_timestamp"`

	SampleSize    int    `yaml:"sample_size"`
	WriteFull     bool   `yaml:"write_full"`
	MasterVersion string `yaml:"master_version"`

	// CategoryCaps bound the stratified non-crisis sample per event_type.
	// Categories without an entry use DefaultCap.
	CategoryCaps map[string]int `yaml:"category_caps"`
	DefaultCap   int            `yaml:"default_cap"`

	// RulesPath optionally overrides the built-in event-type rule table.
	RulesPath string `yaml:"rules_path"`

	Sources SourcesConfig `yaml:"sources"`
}

// SourcesConfig locates every raw input table, relative to InputDir.
type SourcesConfig struct {
	HumAID     string           `yaml:"humaid"`
	CrisisLex  string           `yaml:"crisislex"`
	GoEmotions string           `yaml:"goemotions"`
	NonCrisis  []NonCrisisTable `yaml:"non_crisis"`
}

// NonCrisisTable describes one non-crisis dataset's column layout. The
// eight shipped datasets diverge on text/time column names, so each gets
// its own entry instead of branching inside a shared adapter.
type NonCrisisTable struct {
	Name       string `yaml:"name"`
	Filename   string `yaml:"filename"`
	TextColumn string `yaml:"text_column"`
	TimeColumn string `yaml:"time_column"`
	EventName  string `yaml:"event_name"`
	EventType  string `yaml:"event_type"`
}

// Default returns the built-in configuration, including the shipped
// non-crisis dataset layouts.
func Default() Config {
	return Config{
		InputDir:      "data",
		OutputDir:     "standardized_data",
		Seed:          42,
		JitterHours:   6,
		Fallback:      "2018-06-30 23:53:08",
		SampleSize:    1000,
		WriteFull:     false,
		MasterVersion: "v1",
		CategoryCaps:  map[string]int{"sports": 50000},
		DefaultCap:    20000,
		Sources: SourcesConfig{
			HumAID:     "humaid_all.tsv",
			CrisisLex:  "crisislex_all_complete.csv",
			GoEmotions: "goemotions.csv",
			NonCrisis: []NonCrisisTable{
				{Name: "coachella", Filename: "coachella.csv", TextColumn: "text", TimeColumn: "tweet_created", EventName: "coachella_2015", EventType: "entertainment"},
				{Name: "fifa_worldcup", Filename: "fifa_worldcup_2022.csv", TextColumn: "Tweet Content", TimeColumn: "Tweet Posted Time", EventName: "fifa_worldcup_2022", EventType: "sports"},
				{Name: "music_concerts", Filename: "music_artists.csv", TextColumn: "text", TimeColumn: "created_at", EventName: "music_concerts_2021", EventType: "entertainment"},
				{Name: "tokyo_olympics", Filename: "tokyo_olympics_2020.csv", TextColumn: "text", TimeColumn: "date", EventName: "tokyo_olympics_2020", EventType: "sports"},
				{Name: "us_election", Filename: "us_election_2020.csv", TextColumn: "tweet", TimeColumn: "created_at", EventName: "us_election_2020", EventType: "politics"},
				{Name: "game_of_thrones", Filename: "game_of_thrones.csv", TextColumn: "text", TimeColumn: "created_at", EventName: "got_season8_2019", EventType: "entertainment"},
				{Name: "worldcup_2018", Filename: "FIFA.csv", TextColumn: "Tweet", TimeColumn: "Date", EventName: "fifa_worldcup_2018", EventType: "sports"},
				{Name: "icc_t20", Filename: "t20_tweets.csv", TextColumn: "text", TimeColumn: "date", EventName: "icc_t20_worldcup_2021", EventType: "sports"},
			},
		},
	}
}

// Load reads a yaml config file over the defaults and validates it.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate enforces the load-time invariants. Violations are
// configuration errors: the pipeline halts before processing any rows.
func (c *Config) Validate() error {
	if c.JitterHours < 0 {
		return fmt.Errorf("config: jitter_hours must be >= 0, got %d: %w", c.JitterHours, model.ErrConfiguration)
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("config: sample_size must be > 0, got %d: %w", c.SampleSize, model.ErrConfiguration)
	}
	if c.DefaultCap <= 0 {
		return fmt.Errorf("config: default_cap must be > 0, got %d: %w", c.DefaultCap, model.ErrConfiguration)
	}
	for category, limit := range c.CategoryCaps {
		if limit <= 0 {
			return fmt.Errorf("config: category cap %q must be > 0, got %d: %w", category, limit, model.ErrConfiguration)
		}
	}
	if _, err := c.FallbackTime(); err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, t := range c.Sources.NonCrisis {
		if t.Name == "" || t.Filename == "" || t.TextColumn == "" || t.TimeColumn == "" {
			return fmt.Errorf("config: non_crisis table %q incomplete: %w", t.Name, model.ErrConfiguration)
		}
		if seen[t.Name] {
			return fmt.Errorf("config: duplicate non_crisis table %q: %w", t.Name, model.ErrConfiguration)
		}
		seen[t.Name] = true
	}
	return nil
}

// FallbackTime parses the fixed fallback timestamp constant.
func (c *Config) FallbackTime() (time.Time, error) {
	t, err := time.Parse(model.TimeLayout, c.Fallback)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: fallback_timestamp %q: %v: %w", c.Fallback, err, model.ErrConfiguration)
	}
	return t.UTC(), nil
}

// Jitter returns the jitter half-width as a duration.
func (c *Config) Jitter() time.Duration {
	return time.Duration(c.JitterHours) * time.Hour
}

// Cap returns the sampling cap for a category.
func (c *Config) Cap(category string) int {
	if limit, ok := c.CategoryCaps[category]; ok {
		return limit
	}
	return c.DefaultCap
}
