package config

import (
	"testing"
	"time"
)

func TestForRunRefreshesStaleTargetDate(t *testing.T) {
	t.Setenv("TARGET_DATE", "")
	loc := Timezone()
	stale := time.Date(2024, time.January, 5, 0, 0, 0, 0, loc)
	cfg := &RunConfig{Location: loc, TargetDate: stale, Workers: 3, OutputDir: "out"}

	run := cfg.ForRun()

	now := time.Now().In(loc)
	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if !run.TargetDate.Equal(want) {
		t.Errorf("ForRun target date = %v; want today %v", run.TargetDate, want)
	}
	if run.Workers != 3 || run.OutputDir != "out" {
		t.Errorf("ForRun changed unrelated fields: %+v", run)
	}
	if !cfg.TargetDate.Equal(stale) {
		t.Errorf("ForRun mutated the receiver: %v", cfg.TargetDate)
	}
}

func TestForRunHonorsTargetDateOverride(t *testing.T) {
	t.Setenv("TARGET_DATE", "2024-01-05")

	loc := Timezone()
	cfg := &RunConfig{Location: loc, TargetDate: time.Date(2023, time.June, 1, 0, 0, 0, 0, loc)}

	run := cfg.ForRun()
	if got := run.TargetDateString(); got != "2024-01-05" {
		t.Errorf("TargetDateString = %q; want the TARGET_DATE override", got)
	}
}

func TestLoadRejectsMalformedTargetDate(t *testing.T) {
	t.Setenv("TARGET_DATE", "05-01-2024")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a malformed TARGET_DATE")
	}
}
