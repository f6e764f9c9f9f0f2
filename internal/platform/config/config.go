package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults carries the course-shape defaults read from courseforge.yaml.
// They seed CLI flags only; the planner always receives an explicit grid.
type Defaults struct {
	Weeks            int     `yaml:"weeks"`
	ChaptersPerWeek  int     `yaml:"chapters_per_week"`
	TargetPerChapter float64 `yaml:"target_per_chapter"`
	FirstWeek        int     `yaml:"first_week"`
	WeeklyMinutes    int     `yaml:"weekly_minutes"`
	SyncSessions     int     `yaml:"sync_sessions_per_chapter"`
	WeeklyReview     bool    `yaml:"weekly_review"`
	SharedReview     bool    `yaml:"shared_review"`
	TrackType        string  `yaml:"track_type"`
}

type Config struct {
	WorkspacePath string
	DBPath        string
	Defaults      Defaults
}

func New(workspacePath string) (Config, error) {
	if workspacePath == "" {
		return Config{}, fmt.Errorf("workspace path is required")
	}
	cfg := Config{
		WorkspacePath: workspacePath,
		DBPath:        filepath.Join(workspacePath, ".courseforge", "courseforge.db"),
		Defaults: Defaults{
			Weeks:           4,
			ChaptersPerWeek: 5,
			FirstWeek:       1,
			SyncSessions:    1,
			WeeklyReview:    true,
			SharedReview:    true,
			TrackType:       "Programming",
		},
	}
	raw, err := os.ReadFile(filepath.Join(workspacePath, "courseforge.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read courseforge.yaml: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg.Defaults); err != nil {
		return Config{}, fmt.Errorf("parse courseforge.yaml: %w", err)
	}
	return cfg, nil
}
