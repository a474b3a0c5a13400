// Package draft persists the in-progress shift report between command
// invocations as a JSON file under the data directory. The draft only
// reaches the database on commit.
package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoDraft is returned when no draft file exists.
var ErrNoDraft = errors.New("no draft in progress")

// Draft is the serialized in-progress report.
type Draft struct {
	EditingReportID int64       `json:"editing_report_id,omitempty"`
	Date            string      `json:"date"`
	Shift           string      `json:"shift"`
	Engineer        string      `json:"engineer"`
	SecondEngineer  string      `json:"second_engineer,omitempty"`
	TeamMembers     string      `json:"team_members,omitempty"`
	CarriedOver     int         `json:"carried_over"`
	Scheduled       int         `json:"scheduled"`
	Reactives       []*Reactive `json:"reactives,omitempty"`
	PPMs            []*PPM      `json:"ppms,omitempty"`
	Spares          []*Spare    `json:"spares,omitempty"`
}

// Reactive is one unplanned repair entry in the draft.
type Reactive struct {
	Asset           string  `json:"asset"`
	TimeCalled      string  `json:"time_called"`
	TimeBack        string  `json:"time_back"`
	Fault           string  `json:"fault"`
	Engineers       int     `json:"engineers"`
	Description     string  `json:"description,omitempty"`
	DowntimeMinutes float64 `json:"downtime_minutes"`
	Status          string  `json:"status"`
}

// PPM is one planned maintenance entry in the draft.
type PPM struct {
	Asset    string `json:"asset"`
	TaskID   string `json:"task_id,omitempty"`
	Status   string `json:"status"`
	Comments string `json:"comments,omitempty"`
}

// Spare is one spare usage entry in the draft.
type Spare struct {
	PartNumber   string `json:"part_number"`
	Description  string `json:"description,omitempty"`
	Location     string `json:"location,omitempty"`
	CategoryCode int    `json:"category_code"`
	Quantity     int    `json:"quantity"`
	Decision     string `json:"decision,omitempty"`
}

// Store reads and writes the draft file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Exists reports whether a draft is in progress.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Load reads the current draft. Returns ErrNoDraft when none exists.
func (s *Store) Load() (*Draft, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoDraft
		}
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}

	return &d, nil
}

// Save writes the draft, creating the data directory if needed.
func (s *Store) Save(d *Draft) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create draft dir: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}

	return nil
}

// Discard deletes the draft file. Discarding a nonexistent draft is not an
// error.
func (s *Store) Discard() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to discard draft: %w", err)
	}
	return nil
}
