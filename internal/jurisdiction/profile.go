// Package jurisdiction holds the versioned, read-only jurisdiction profiles
// that configure priority scoring: factor weights, level thresholds and the
// descriptive metadata published alongside them.
package jurisdiction

import (
	"encoding/json"
	"regexp"
)

// GenericID is the id of the profile used when a jurisdiction is omitted or unknown.
const GenericID = "generic"

var idPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

type Language string

const (
	LanguageEN   Language = "en"
	LanguageFR   Language = "fr"
	LanguageBoth Language = "both"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEN, LanguageFR, LanguageBoth:
		return true
	}
	return false
}

// Thresholds are the minimum scores for each priority level. A valid profile
// has Priority3 < Priority2 < Priority1 < Priority0.
type Thresholds struct {
	Priority3 int `yaml:"priority3" json:"priority3"`
	Priority2 int `yaml:"priority2" json:"priority2"`
	Priority1 int `yaml:"priority1" json:"priority1"`
	Priority0 int `yaml:"priority0" json:"priority0"`
}

// Ascending reports whether the cut points are strictly increasing.
func (t Thresholds) Ascending() bool {
	return t.Priority3 < t.Priority2 && t.Priority2 < t.Priority1 && t.Priority1 < t.Priority0
}

// PriorityWeights is the flat weight table of a profile. On the wire the
// factor weights and the thresholds object share one mapping.
type PriorityWeights struct {
	Factors    map[string]int `yaml:",inline"`
	Thresholds Thresholds     `yaml:"thresholds"`
}

// Weight returns the configured weight for key, or 0 when the profile does not define it.
func (w PriorityWeights) Weight(key string) int {
	return w.Factors[key]
}

func (w PriorityWeights) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(w.Factors)+1)
	for k, v := range w.Factors {
		out[k] = v
	}
	out["thresholds"] = w.Thresholds
	return json.Marshal(out)
}

// Profile is one version of a jurisdiction's configuration. Registries hand
// out copies, so changing a returned Profile never affects other callers.
type Profile struct {
	ID                string          `yaml:"id" json:"id"`
	Version           int             `yaml:"version" json:"version"`
	Name              string          `yaml:"name" json:"name"`
	Region            string          `yaml:"region" json:"region"`
	Country           string          `yaml:"country" json:"country"`
	Language          Language        `yaml:"language" json:"language"`
	PriorityWeights   PriorityWeights `yaml:"priorityWeights" json:"priorityWeights"`
	Integrations      map[string]bool `yaml:"integrations" json:"integrations"`
	LegalRequirements map[string]any  `yaml:"legalRequirements" json:"legalRequirements"`
	Contacts          map[string]any  `yaml:"contacts" json:"contacts"`
}

// Summary is the listing view of a profile.
type Summary struct {
	ID       string   `json:"id"`
	Version  int      `json:"version"`
	Name     string   `json:"name"`
	Region   string   `json:"region"`
	Country  string   `json:"country"`
	Language Language `json:"language"`
}

func (p Profile) Summary() Summary {
	return Summary{ID: p.ID, Version: p.Version, Name: p.Name, Region: p.Region, Country: p.Country, Language: p.Language}
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	out := p
	out.PriorityWeights.Factors = cloneMap(p.PriorityWeights.Factors)
	out.Integrations = cloneMap(p.Integrations)
	out.LegalRequirements = cloneTree(p.LegalRequirements)
	out.Contacts = cloneTree(p.Contacts)
	return out
}

func cloneMap[V int | bool](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneTree(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneTree(t)
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	}
	return v
}
