package roster

import (
	"fmt"
	"os"
	"strings"

	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// file is the on-disk roster. JSON rosters parse as YAML too.
// The batches/students keys are the layout used by older roster files.
type file struct {
	Groups  []entity.RosterGroup `yaml:"groups"`
	Batches []legacyBatch        `yaml:"batches"`
}

type legacyBatch struct {
	Name     string          `yaml:"name"`
	Channel  string          `yaml:"channel"`
	Students []entity.Member `yaml:"students"`
}

// Load reads and validates the roster file at path.
func Load(path string) ([]entity.RosterGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	return Parse(data)
}

// Parse decodes a roster document and validates it.
func Parse(data []byte) ([]entity.RosterGroup, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	groups := f.Groups
	for _, b := range f.Batches {
		groups = append(groups, entity.RosterGroup{
			Name:    b.Name,
			Channel: b.Channel,
			Members: b.Students,
		})
	}

	if err := validate(groups); err != nil {
		return nil, err
	}

	return groups, nil
}

func validate(groups []entity.RosterGroup) error {
	names := make(map[string]bool, len(groups))

	for i, g := range groups {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return fmt.Errorf("roster group #%d has no name", i+1)
		}
		if names[name] {
			return fmt.Errorf("roster group %q is listed twice", name)
		}
		names[name] = true

		if strings.TrimSpace(g.Channel) == "" {
			return fmt.Errorf("roster group %q has no channel", name)
		}

		usernames := make(map[string]bool, len(g.Members))
		for _, m := range g.Members {
			if m.Key() == "" {
				return fmt.Errorf("roster group %q has a member without username", name)
			}
			if usernames[m.Key()] {
				return fmt.Errorf("roster group %q lists %s twice", name, m.Username)
			}
			usernames[m.Key()] = true
		}
	}

	return nil
}

// CountMembers returns the number of members across all groups.
func CountMembers(groups []entity.RosterGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Members)
	}
	return total
}
