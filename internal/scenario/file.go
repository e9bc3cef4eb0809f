package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// FileVersion is the only supported scenario file version.
const FileVersion = 1

// ErrNotFound is returned when a scenario file doesn't exist.
var ErrNotFound = errors.New("scenario file not found")

type file struct {
	Version   int        `json:"version"`
	Scenarios []Scenario `json:"scenarios"`
}

// Load reads and validates a scenario file.
// Numeric inputs are kept as json.Number so large integers stay exact.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario file contents.
func Parse(data []byte) ([]Scenario, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}

	if f.Version == 0 {
		f.Version = FileVersion
	}
	if f.Version != FileVersion {
		return nil, fmt.Errorf("unsupported scenario file version: %d", f.Version)
	}
	if err := Validate(f.Scenarios); err != nil {
		return nil, fmt.Errorf("invalid scenarios: %w", err)
	}

	return f.Scenarios, nil
}

// Save writes scenarios to path.
func Save(path string, scenarios []Scenario) error {
	if err := Validate(scenarios); err != nil {
		return fmt.Errorf("invalid scenarios: %w", err)
	}

	data, err := json.MarshalIndent(file{Version: FileVersion, Scenarios: scenarios}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scenarios: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scenarios: %w", err)
	}

	return nil
}
