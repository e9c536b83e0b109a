package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"crewgram/models"
)

// RosterRepository loads roster files from disk.
type RosterRepository struct{}

// NewRosterRepository creates a new RosterRepository
func NewRosterRepository() *RosterRepository {
	return &RosterRepository{}
}

// Ensure RosterRepository implements RosterRepositoryInterface
var _ RosterRepositoryInterface = (*RosterRepository)(nil)

// Load reads a roster file: one club preset plus one or more crews.
// Each roster's boat class code is checked against the registry up front
// so bad data is rejected before compilation starts.
func (r *RosterRepository) Load(path string) (*models.RosterFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var file models.RosterFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}

	if len(file.Rosters) == 0 {
		return nil, fmt.Errorf("roster file %s contains no rosters", path)
	}

	for _, roster := range file.Rosters {
		if _, err := models.LookupBoatClass(roster.BoatClassCode); err != nil {
			return nil, fmt.Errorf("roster %q: %w", roster.Name, err)
		}
	}

	log.Printf("✓ Roster file loaded: %s (%d crews, club=%s)", path, len(file.Rosters), file.Club.Name)
	return &file, nil
}
