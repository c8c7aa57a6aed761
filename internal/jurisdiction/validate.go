package jurisdiction

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// requiredKeys are the top-level keys every profile document must carry.
var requiredKeys = []string{
	"id", "name", "region", "country", "language",
	"priorityWeights", "integrations", "legalRequirements", "contacts",
}

// ValidationResult reports whether a candidate profile is acceptable and, if
// not, every problem found.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidationError wraps a failed ValidationResult for a named source.
type ValidationError struct {
	Source string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile %s: %s", e.Source, strings.Join(e.Errors, "; "))
}

// Validate checks a decoded profile document. It never corrects the
// candidate: invalid profiles are rejected as they are.
func Validate(candidate map[string]any) ValidationResult {
	var errs []string
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if candidate == nil {
		return ValidationResult{Valid: false, Errors: []string{"profile must be an object"}}
	}
	for _, key := range requiredKeys {
		if _, ok := candidate[key]; !ok {
			fail("missing required key: %s", key)
		}
	}

	if raw, ok := candidate["id"]; ok {
		id, isString := raw.(string)
		if !isString || !idPattern.MatchString(id) {
			fail("id must match %s", idPattern.String())
		}
	}
	if raw, ok := candidate["language"]; ok {
		lang, isString := raw.(string)
		if !isString || !Language(lang).Valid() {
			fail("language must be one of en, fr, both")
		}
	}
	if raw, ok := candidate["version"]; ok {
		if v, isInt := asInt(raw); !isInt || v < 1 {
			fail("version must be a positive integer")
		}
	}
	for _, key := range []string{"name", "region", "country"} {
		if raw, ok := candidate[key]; ok {
			if _, isString := raw.(string); !isString {
				fail("%s must be a string", key)
			}
		}
	}
	for _, key := range []string{"integrations", "legalRequirements", "contacts"} {
		if raw, ok := candidate[key]; ok {
			if _, isMap := asMap(raw); !isMap {
				fail("%s must be an object", key)
			}
		}
	}
	if raw, ok := candidate["integrations"]; ok {
		if m, isMap := asMap(raw); isMap {
			for _, k := range sortedKeys(m) {
				if _, isBool := m[k].(bool); !isBool {
					fail("integrations.%s must be a boolean", k)
				}
			}
		}
	}

	if raw, ok := candidate["priorityWeights"]; ok {
		errs = append(errs, validateWeights(raw)...)
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func validateWeights(raw any) []string {
	weights, ok := asMap(raw)
	if !ok {
		return []string{"priorityWeights must be an object"}
	}
	var errs []string
	for _, key := range RequiredWeightKeys {
		v, present := weights[key]
		if !present {
			errs = append(errs, fmt.Sprintf("missing weight: priorityWeights.%s", key))
			continue
		}
		n, isInt := asInt(v)
		if !isInt {
			errs = append(errs, fmt.Sprintf("priorityWeights.%s must be an integer", key))
			continue
		}
		if n < 0 {
			errs = append(errs, fmt.Sprintf("priorityWeights.%s must not be negative", key))
		}
	}
	for _, key := range sortedKeys(weights) {
		if key == "thresholds" || isRequiredWeight(key) {
			continue
		}
		if _, isInt := asInt(weights[key]); !isInt {
			errs = append(errs, fmt.Sprintf("priorityWeights.%s must be an integer", key))
		}
	}

	rawThresholds, present := weights["thresholds"]
	if !present {
		return append(errs, "missing weight: priorityWeights.thresholds")
	}
	thresholds, ok := asMap(rawThresholds)
	if !ok {
		return append(errs, "priorityWeights.thresholds must be an object")
	}
	values := make([]int, 0, len(thresholdKeys))
	for _, key := range thresholdKeys {
		v, present := thresholds[key]
		if !present {
			errs = append(errs, fmt.Sprintf("missing threshold: priorityWeights.thresholds.%s", key))
			continue
		}
		n, isInt := asInt(v)
		if !isInt {
			errs = append(errs, fmt.Sprintf("priorityWeights.thresholds.%s must be an integer", key))
			continue
		}
		values = append(values, n)
	}
	if len(values) == len(thresholdKeys) {
		for i := 1; i < len(values); i++ {
			if values[i] <= values[i-1] {
				errs = append(errs, "thresholds must be strictly ascending: priority3 < priority2 < priority1 < priority0")
				break
			}
		}
	}
	return errs
}

func isRequiredWeight(key string) bool {
	for _, k := range RequiredWeightKeys {
		if k == key {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[s] = val
		}
		return out, true
	}
	return nil, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if math.IsNaN(n) || n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
