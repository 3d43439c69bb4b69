package profiles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"

	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk YAML shape:
//
//	profiles:
//	  - name: Alice
//	  - name: Bob
type seedFile struct {
	Profiles []struct {
		Name string `yaml:"name"`
	} `yaml:"profiles"`
}

// LoadSeedFile reads the profile names to pre-register at startup.
// A missing file is not an error and yields no names.
func LoadSeedFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile seed file: %w", err)
	}

	var raw seedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse profile seed file %s: %w", path, err)
	}

	names := make([]string, 0, len(raw.Profiles))
	for _, p := range raw.Profiles {
		names = append(names, p.Name)
	}
	return names, nil
}

// Seed registers each name that is not yet taken and returns how many were created.
// Blank and already-registered names are skipped.
func (s *Service) Seed(ctx context.Context, names []string) (int, error) {
	created := 0
	for _, name := range names {
		_, err := s.Create(ctx, v1.CreateProfileRequest{Name: name})
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrDuplicateProfile):
			slog.Debug("Seed profile already registered", "name", name)
		case errors.Is(err, ErrMissingName):
			slog.Warn("Skipping blank seed profile name")
		default:
			return created, err
		}
	}
	return created, nil
}
