package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"newsharvest/types"
)

// RunConfig is the immutable per-run configuration. It is computed once at
// startup and threaded into every component at construction; components never
// consult the environment themselves.
type RunConfig struct {
	Location   *time.Location
	TargetDate time.Time // midnight of the target calendar date in Location

	Sites    []types.SiteConfig
	FeedURL  string
	FeedSite string

	MaxLinksPerSite int
	Workers         int
	FetchTimeout    time.Duration
	FetchDelay      time.Duration
	Deadline        time.Duration

	OutputDir string
}

// Load builds the run configuration from the environment. The target date is
// today in the fixed timezone unless TARGET_DATE (YYYY-MM-DD) overrides it.
func Load() (*RunConfig, error) {
	loc := Timezone()

	target, err := resolveTargetDate(loc)
	if err != nil {
		return nil, err
	}

	cfg := &RunConfig{
		Location:        loc,
		TargetDate:      target,
		Sites:           Sites(),
		FeedURL:         FeedURL,
		FeedSite:        FeedSite,
		MaxLinksPerSite: envInt("MAX_LINKS_PER_SITE", MaxLinksPerSite),
		Workers:         envInt("WORKER_COUNT", WorkerCount),
		FetchTimeout:    RequestTimeout,
		FetchDelay:      FetchDelay,
		Deadline:        envDuration("RUN_DEADLINE", DefaultDeadline),
		OutputDir:       GetEnvOrDefault("OUTPUT_DIR", "."),
	}
	return cfg, nil
}

// ForRun returns a copy of c with the target date re-resolved against the
// current clock. A long-lived process (serve mode) calls this per triggered
// run so the date is not frozen at boot; TARGET_DATE still pins it when set.
func (c *RunConfig) ForRun() *RunConfig {
	run := *c
	if target, err := resolveTargetDate(c.Location); err == nil {
		run.TargetDate = target
	}
	return &run
}

// resolveTargetDate is midnight of today in loc, or of TARGET_DATE when set.
func resolveTargetDate(loc *time.Location) (time.Time, error) {
	target := time.Now().In(loc)
	if v := strings.TrimSpace(os.Getenv("TARGET_DATE")); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid TARGET_DATE %q: %w", v, err)
		}
		target = t
	}
	return time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, loc), nil
}

// TargetDateString renders the target date as an ISO calendar date.
func (c *RunConfig) TargetDateString() string {
	return c.TargetDate.Format("2006-01-02")
}

// OutputFile is the CSV artifact path for this run's date.
func (c *RunConfig) OutputFile() string {
	name := fmt.Sprintf("news_%s.csv", c.TargetDateString())
	if c.OutputDir == "" || c.OutputDir == "." {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

// GetEnvOrDefault returns the environment value for key or a fallback.
func GetEnvOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
