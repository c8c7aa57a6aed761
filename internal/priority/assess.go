// Package priority scores missing-person cases against a jurisdiction
// profile and maps the score to a priority level.
package priority

import (
	"fmt"
	"math"

	"beacon/internal/jurisdiction"
)

// WeatherFactor names the externally computed weather sub-score in the factor list.
const WeatherFactor = "weatherRiskPoints"

const weatherLabel = "Weather exposure risk"

// Factor is one applied contribution to a score.
type Factor struct {
	Factor string `json:"factor"`
	Weight int    `json:"weight"`
}

// Assessment is the outcome of scoring one case.
type Assessment struct {
	Score        int    `json:"score"`
	Level        Level  `json:"level"`
	Jurisdiction string `json:"jurisdiction"`
	// ProfileVersion is the version of the jurisdiction profile used.
	ProfileVersion int `json:"profileVersion"`
	// JurisdictionFallback is set when the requested jurisdiction was
	// unknown and the generic profile was used instead.
	JurisdictionFallback bool     `json:"jurisdictionFallback"`
	Factors              []Factor `json:"factors"`
	Explanation          []string `json:"explanation"`
}

// Assess scores factors against the profile resolved from reg for
// jurisdictionID. It is deterministic and never fails: unknown
// jurisdictions use the generic profile and absent inputs contribute
// nothing. A nil reg uses the built-in profiles.
func Assess(reg *jurisdiction.Registry, f CaseRiskFactors, jurisdictionID string) Assessment {
	if reg == nil {
		reg = jurisdiction.Default()
	}
	profile, fellBack := reg.ResolveWithFallback(jurisdictionID)
	weights := profile.PriorityWeights

	var (
		factors = make([]Factor, 0, len(factorTable)+1)
		lines   = make([]string, 0, len(factorTable)+1)
		taken   = make(map[band]bool, 2)
		score   int
	)
	for _, rule := range factorTable {
		if rule.band != noBand && taken[rule.band] {
			continue
		}
		if !rule.applies(f) {
			continue
		}
		if rule.band != noBand {
			taken[rule.band] = true
		}
		w := weights.Weight(rule.key)
		if w == 0 {
			continue
		}
		score += w
		factors = append(factors, Factor{Factor: rule.key, Weight: w})
		lines = append(lines, factorLine(rule.label, w))
	}

	if pts, ok := weatherPoints(f.WeatherRiskPoints); ok {
		score += pts
		factors = append(factors, Factor{Factor: WeatherFactor, Weight: pts})
		lines = append(lines, factorLine(weatherLabel, pts))
	}

	level := LevelForScore(score, weights.Thresholds)
	explanation := make([]string, 0, len(lines)+1)
	explanation = append(explanation, levelLine(level, score, profile.ID))
	explanation = append(explanation, lines...)

	return Assessment{
		Score:                score,
		Level:                level,
		Jurisdiction:         profile.ID,
		ProfileVersion:       profile.Version,
		JurisdictionFallback: fellBack,
		Factors:              factors,
		Explanation:          explanation,
	}
}

// LevelForScore maps a score to a level, most severe first. A score equal
// to a cut point belongs to the more severe level.
func LevelForScore(score int, t jurisdiction.Thresholds) Level {
	switch {
	case score >= t.Priority0:
		return Critical
	case score >= t.Priority1:
		return High
	case score >= t.Priority2:
		return Medium
	case score >= t.Priority3:
		return Low
	default:
		return Minimal
	}
}

// weatherPoints rounds the external sub-score. Missing, non-finite and
// non-positive values contribute nothing.
func weatherPoints(v *float64) (int, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	pts := int(math.Round(*v))
	if pts <= 0 {
		return 0, false
	}
	return pts, true
}

func levelLine(l Level, score int, profileID string) string {
	d := Display(l)
	return fmt.Sprintf("Priority %s %s / %s (score %d, profile %s)", l.Code(), d.Label, d.LabelFr, score, profileID)
}

func factorLine(label string, weight int) string {
	return fmt.Sprintf("%+d %s", weight, label)
}

// Hold keeps a at level l when l is more urgent than the level its score
// maps to, as when a case has already been auto-escalated. The score and
// factors are unchanged and the explanation records the hold.
func Hold(a Assessment, l Level) Assessment {
	if !l.Valid() || l >= a.Level {
		return a
	}
	d := Display(l)
	a.Explanation = append(append([]string(nil), a.Explanation...),
		fmt.Sprintf("Held at %s %s / %s by earlier auto-escalation (score maps to %s)", l.Code(), d.Label, d.LabelFr, a.Level.Code()))
	a.Level = l
	return a
}
