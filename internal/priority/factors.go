package priority

import (
	"encoding/json"
	"math"
)

// legacyHoursKey is an old misspelling of hoursMissing still sent by some
// clients. It is read on input only and never written back.
const legacyHoursKey = "hourssMissing"

// CaseRiskFactors are the per-case inputs to an assessment. Numeric fields
// are nil when absent; booleans default to "not present".
type CaseRiskFactors struct {
	Age                      *float64 `json:"age,omitempty"`
	HoursMissing             *float64 `json:"hoursMissing,omitempty"`
	HasMedicalCondition      bool     `json:"hasMedicalCondition,omitempty"`
	RequiresDailyMedication  bool     `json:"requiresDailyMedication,omitempty"`
	HasMentalHealthCondition bool     `json:"hasMentalHealthCondition,omitempty"`
	SuicidalRisk             bool     `json:"suicidalRisk,omitempty"`
	SuspectedAbduction       bool     `json:"suspectedAbduction,omitempty"`
	DomesticViolenceHistory  bool     `json:"domesticViolenceHistory,omitempty"`
	OutOfCharacter           bool     `json:"outOfCharacter,omitempty"`
	// HasFinancialResources is a risk only when explicitly false.
	HasFinancialResources *bool    `json:"hasFinancialResources,omitempty"`
	AdverseWeather        bool     `json:"adverseWeather,omitempty"`
	WeatherRiskPoints     *float64 `json:"weatherRiskPoints,omitempty"`
}

// UnmarshalJSON accepts any JSON value. Fields with the wrong type, and
// non-finite numbers, are treated as absent rather than rejected.
func (f *CaseRiskFactors) UnmarshalJSON(data []byte) error {
	*f = CaseRiskFactors{}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	f.Age = number(raw, "age")
	f.HoursMissing = number(raw, "hoursMissing")
	if f.HoursMissing == nil {
		f.HoursMissing = number(raw, legacyHoursKey)
	}
	f.HasMedicalCondition = flag(raw, "hasMedicalCondition")
	f.RequiresDailyMedication = flag(raw, "requiresDailyMedication")
	f.HasMentalHealthCondition = flag(raw, "hasMentalHealthCondition")
	f.SuicidalRisk = flag(raw, "suicidalRisk")
	f.SuspectedAbduction = flag(raw, "suspectedAbduction")
	f.DomesticViolenceHistory = flag(raw, "domesticViolenceHistory")
	f.OutOfCharacter = flag(raw, "outOfCharacter")
	if v, ok := raw["hasFinancialResources"].(bool); ok {
		f.HasFinancialResources = &v
	}
	f.AdverseWeather = flag(raw, "adverseWeather")
	f.WeatherRiskPoints = number(raw, "weatherRiskPoints")
	return nil
}

// UsesLegacyHoursKey reports whether a raw factors document carries only the
// misspelled hours key.
func UsesLegacyHoursKey(data []byte) bool {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return false
	}
	_, legacy := raw[legacyHoursKey]
	_, current := raw["hoursMissing"]
	return legacy && !current
}

func number(raw map[string]any, key string) *float64 {
	v, ok := raw[key].(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func flag(raw map[string]any, key string) bool {
	v, _ := raw[key].(bool)
	return v
}

// Float and Bool are helpers for building factors in code.
func Float(v float64) *float64 { return &v }

func Bool(v bool) *bool { return &v }
