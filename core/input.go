package core

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/northstarwang/burnlens/schema"
)

// LoadSprintBurndown reads a burndown record from a JSON file.
func LoadSprintBurndown(path string) (*schema.SprintBurndown, error) {
	var b schema.SprintBurndown
	if err := loadJSON(path, &b); err != nil {
		return nil, fmt.Errorf("failed to load burndown record: %w", err)
	}
	return &b, nil
}

// LoadVelocityHistory reads a team's velocity records from a JSON file.
func LoadVelocityHistory(path string) ([]schema.TeamVelocity, error) {
	var records []schema.TeamVelocity
	if err := loadJSON(path, &records); err != nil {
		return nil, fmt.Errorf("failed to load velocity history: %w", err)
	}
	return records, nil
}

// LoadTaskProgress reads a batch of task progress records from a JSON file.
func LoadTaskProgress(path string) ([]schema.TaskProgress, error) {
	var records []schema.TaskProgress
	if err := loadJSON(path, &records); err != nil {
		return nil, fmt.Errorf("failed to load task progress: %w", err)
	}
	return records, nil
}

func loadJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	dec := json.NewDecoder(f)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}
