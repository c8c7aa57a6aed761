package jurisdiction

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// profilePattern selects profile documents under a profiles directory.
const profilePattern = "**/*.{yaml,yml,json}"

//go:embed profiles/*.yaml
var builtinFS embed.FS

var builtins = sync.OnceValues(func() ([]Profile, error) {
	return LoadFS(builtinFS)
})

// Builtin returns copies of the profiles compiled into the binary.
func Builtin() []Profile {
	profiles, err := builtins()
	if err != nil {
		panic(fmt.Sprintf("jurisdiction: built-in profiles are invalid: %v", err))
	}
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = p.Clone()
	}
	return out
}

// Generic returns the built-in generic profile.
func Generic() Profile {
	for _, p := range Builtin() {
		if p.ID == GenericID {
			return p
		}
	}
	panic("jurisdiction: built-in generic profile missing")
}

// Default returns a registry holding only the built-in profiles.
func Default() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		panic(fmt.Sprintf("jurisdiction: %v", err))
	}
	return r
}

// Load builds a registry from the built-in profiles plus every profile
// document found under dir. An empty dir loads only the built-ins. Any
// invalid document fails the whole load.
func Load(dir string) (*Registry, error) {
	profiles := append([]Profile(nil), Builtin()...)
	if dir != "" {
		extra, err := LoadFS(os.DirFS(dir))
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, extra...)
	}
	return NewRegistry(profiles...)
}

// LoadFS decodes and validates every profile document in fsys. Files are
// read in lexical order; all decoding and validation failures are returned
// together.
func LoadFS(fsys fs.FS) ([]Profile, error) {
	matches, err := doublestar.Glob(fsys, profilePattern)
	if err != nil {
		return nil, fmt.Errorf("glob profiles: %w", err)
	}
	sort.Strings(matches)

	var (
		profiles []Profile
		errs     []error
	)
	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", name, err))
			continue
		}
		p, err := Decode(name, data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, errors.Join(errs...)
}

// Decode parses a single profile document, validates it and converts it to
// a Profile. JSON is selected by a .json source name, YAML otherwise. The
// Profile is built from the same decoded document that was validated, so a
// document Validate accepts always decodes.
func Decode(source string, data []byte) (Profile, error) {
	var doc map[string]any
	var err error
	if strings.EqualFold(path.Ext(source), ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", source, err)
	}
	if res := Validate(doc); !res.Valid {
		return Profile{}, &ValidationError{Source: source, Errors: res.Errors}
	}

	// Integral floats such as 30.0 re-encode as 30.
	normalized, err := json.Marshal(stringKeys(doc))
	if err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", source, err)
	}
	var p Profile
	if err := json.Unmarshal(normalized, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", source, err)
	}
	if p.Version == 0 {
		p.Version = 1
	}
	return p, nil
}

// stringKeys converts the map[any]any nodes YAML produces for non-string
// keys into JSON-encodable maps.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = stringKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = stringKeys(val)
		}
		return out
	}
	return v
}

// UnmarshalJSON reads the flat weight table. Numbers follow the same rule as
// Validate: integral values are accepted whether or not they carry a
// fraction part.
func (w *PriorityWeights) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	w.Factors = make(map[string]int, len(raw))
	for key, value := range raw {
		if key == "thresholds" {
			t, ok := asMap(value)
			if !ok {
				return fmt.Errorf("priorityWeights.thresholds must be an object")
			}
			for i, dst := range []*int{&w.Thresholds.Priority3, &w.Thresholds.Priority2, &w.Thresholds.Priority1, &w.Thresholds.Priority0} {
				n, ok := asInt(t[thresholdKeys[i]])
				if !ok {
					return fmt.Errorf("priorityWeights.thresholds.%s must be an integer", thresholdKeys[i])
				}
				*dst = n
			}
			continue
		}
		n, ok := asInt(value)
		if !ok {
			return fmt.Errorf("priorityWeights.%s must be an integer", key)
		}
		w.Factors[key] = n
	}
	return nil
}
