// Package escalation decides when an unresolved case should move up one
// priority level because too much time has passed.
package escalation

import (
	"fmt"
	"math"

	"beacon/internal/priority"
)

// Rule promotes a case from one level to the next once it has been
// unresolved for at least After hours.
type Rule struct {
	From  priority.Level
	To    priority.Level
	After float64
}

// rules is keyed by the level being left. Critical has no rule.
var rules = map[priority.Level]Rule{
	priority.Minimal: {From: priority.Minimal, To: priority.Low, After: 48},
	priority.Low:     {From: priority.Low, To: priority.Medium, After: 72},
	priority.Medium:  {From: priority.Medium, To: priority.High, After: 120},
	priority.High:    {From: priority.High, To: priority.Critical, After: 168},
}

// RuleFor returns the escalation rule that applies at level l.
func RuleFor(l priority.Level) (Rule, bool) {
	r, ok := rules[l]
	return r, ok
}

// Decision is the outcome of one escalation check.
type Decision struct {
	ShouldEscalate bool            `json:"shouldEscalate"`
	NewLevel       *priority.Level `json:"newLevel,omitempty"`
	Reason         string          `json:"reason,omitempty"`
}

// Check advances current by at most one level when hours meets the
// threshold for current. Critical never escalates; unknown levels and
// negative or non-finite hours never escalate.
func Check(current priority.Level, hours float64) Decision {
	r, ok := rules[current]
	if !ok || math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return Decision{}
	}
	if hours < r.After {
		return Decision{}
	}
	to := r.To
	return Decision{
		ShouldEscalate: true,
		NewLevel:       &to,
		Reason:         fmt.Sprintf("Auto-escalated from %s to %s after %g hours unresolved", r.From, r.To, r.After),
	}
}

// Settle applies Check repeatedly, the way a periodic sweep would, and
// returns every escalation step in order. It returns nil when nothing
// escalates.
func Settle(current priority.Level, hours float64) []Decision {
	var steps []Decision
	for {
		d := Check(current, hours)
		if !d.ShouldEscalate {
			return steps
		}
		steps = append(steps, d)
		current = *d.NewLevel
	}
}
