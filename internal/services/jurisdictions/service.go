package jurisdictions

import (
	"context"

	"beacon/internal/jurisdiction"
)

// ErrNotFound is returned by Get for an unknown id. Only explicit lookups
// report it; scoring falls back to the generic profile instead.
var ErrNotFound = errString("jurisdiction not found")

type errString string

func (e errString) Error() string { return string(e) }

type Service struct {
	profiles jurisdiction.Source
}

func New(profiles jurisdiction.Source) *Service { return &Service{profiles: profiles} }

func (s *Service) List(ctx context.Context) []jurisdiction.Summary {
	profiles := s.profiles.Current().Profiles()
	out := make([]jurisdiction.Summary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.Summary())
	}
	return out
}

func (s *Service) Get(ctx context.Context, id string) (jurisdiction.Profile, error) {
	p, ok := s.profiles.Current().Lookup(id)
	if !ok {
		return jurisdiction.Profile{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) Validate(ctx context.Context, candidate map[string]any) jurisdiction.ValidationResult {
	res := jurisdiction.Validate(candidate)
	if res.Errors == nil {
		res.Errors = []string{}
	}
	return res
}
