package jurisdiction

import (
	"fmt"
	"sort"
	"strings"
)

// Source hands out the registry currently in effect.
type Source interface {
	Current() *Registry
}

// Registry is an immutable set of validated profiles. Several versions of a
// profile may be present; lookups by id return the highest version.
// Profiles are copied on the way in and on the way out, so nothing can
// mutate a Registry after NewRegistry returns and it is safe for concurrent
// use.
type Registry struct {
	versions map[string][]Profile // ascending by version
	generic  Profile
}

// NewRegistry builds a registry from already validated profiles. If none of
// them has the generic id, the built-in generic profile is added.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	r := &Registry{versions: make(map[string][]Profile)}
	seen := make(map[string]bool)
	for _, p := range profiles {
		if p.Version == 0 {
			p.Version = 1
		}
		key := fmt.Sprintf("%s@%d", p.ID, p.Version)
		if seen[key] {
			return nil, fmt.Errorf("duplicate profile version %s", key)
		}
		seen[key] = true
		r.versions[p.ID] = append(r.versions[p.ID], p.Clone())
	}
	for id := range r.versions {
		sort.Slice(r.versions[id], func(i, j int) bool {
			return r.versions[id][i].Version < r.versions[id][j].Version
		})
	}
	if _, ok := r.versions[GenericID]; !ok {
		g := Generic()
		r.versions[GenericID] = []Profile{g}
	}
	r.generic = r.latest(GenericID)
	return r, nil
}

// Current lets a fixed registry act as a Source.
func (r *Registry) Current() *Registry { return r }

func (r *Registry) latest(id string) Profile {
	vs := r.versions[id]
	return vs[len(vs)-1].Clone()
}

// Resolve returns the profile for id, or the generic profile when id is
// empty or unknown. It never fails.
func (r *Registry) Resolve(id string) Profile {
	p, _ := r.ResolveWithFallback(id)
	return p
}

// ResolveWithFallback is Resolve that also reports whether a non-empty id was
// unknown and silently replaced by the generic profile.
func (r *Registry) ResolveWithFallback(id string) (Profile, bool) {
	id = normalizeID(id)
	if id == "" {
		return r.generic.Clone(), false
	}
	if p, ok := r.Lookup(id); ok {
		return p, false
	}
	return r.generic.Clone(), true
}

// Lookup returns the latest version of the profile with the given id.
func (r *Registry) Lookup(id string) (Profile, bool) {
	id = normalizeID(id)
	if _, ok := r.versions[id]; !ok {
		return Profile{}, false
	}
	return r.latest(id), true
}

// Version returns a specific version of a profile.
func (r *Registry) Version(id string, version int) (Profile, bool) {
	for _, p := range r.versions[normalizeID(id)] {
		if p.Version == version {
			return p.Clone(), true
		}
	}
	return Profile{}, false
}

// Versions lists the known version numbers of a profile, ascending.
func (r *Registry) Versions(id string) []int {
	vs := r.versions[normalizeID(id)]
	out := make([]int, 0, len(vs))
	for _, p := range vs {
		out = append(out, p.Version)
	}
	return out
}

// IDs returns the sorted profile ids.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.versions))
	for id := range r.versions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Profiles returns the latest version of every profile, sorted by id.
func (r *Registry) Profiles() []Profile {
	ids := r.IDs()
	out := make([]Profile, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.latest(id))
	}
	return out
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
