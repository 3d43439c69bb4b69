package scheduling

import (
	"context"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
)

// directory is a ProfileResolver over a fixed, ordered profile list.
type directory struct {
	profiles []v1.Profile
	calls    int
	err      error
}

func newDirectory(names ...string) *directory {
	d := &directory{}
	for _, n := range names {
		d.profiles = append(d.profiles, v1.Profile{ID: "id-" + n, Name: n})
	}
	return d
}

func (d *directory) FindProfilesByIDs(ctx context.Context, ids []string) ([]v1.Profile, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []v1.Profile
	for _, p := range d.profiles {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}
