package domain

import (
	"time"

	"beacon/internal/priority"
)

// Case records are owned by the case workflow; this service only reads the
// risk factors and writes back priority fields.

// ErrCaseNotFound is returned by case stores for an unknown case id.
var ErrCaseNotFound = errString("case not found")

type errString string

func (e errString) Error() string { return string(e) }

type CaseStatus string

const (
	CaseOpen     CaseStatus = "open"
	CaseResolved CaseStatus = "resolved"
)

type Case struct {
	ID           string
	Jurisdiction string
	Factors      priority.CaseRiskFactors
	Status       CaseStatus
	// Level is nil until the case has been assessed once.
	Level           *priority.Level
	Score           *int
	Explanation     []string
	ProfileVersion  *int
	ReportedAt      time.Time
	LastAssessedAt  *time.Time
	LastEscalatedAt *time.Time
}

// EscalatedLevel reports the current level when it was set by
// auto-escalation. Reassessment must not move such a case to a less urgent
// level.
func (c Case) EscalatedLevel() (priority.Level, bool) {
	if c.Level == nil || c.LastEscalatedAt == nil {
		return 0, false
	}
	return *c.Level, true
}

// HoursUnresolved is the time since the case was reported, in hours.
func (c Case) HoursUnresolved(now time.Time) float64 {
	return now.Sub(c.ReportedAt).Hours()
}

// EventKind distinguishes entries in a case's priority audit trail.
type EventKind string

const (
	EventAssessed  EventKind = "assessed"
	EventEscalated EventKind = "escalated"
)

// EscalationEvent is written to the audit trail and published to the
// messaging subsystem when a case is auto-escalated.
type EscalationEvent struct {
	EventID         string         `json:"eventId"`
	CaseID          string         `json:"caseId"`
	Jurisdiction    string         `json:"jurisdiction"`
	FromLevel       priority.Level `json:"fromLevel"`
	ToLevel         priority.Level `json:"toLevel"`
	HoursUnresolved float64        `json:"hoursUnresolved"`
	Reason          string         `json:"reason"`
	OccurredAt      time.Time      `json:"occurredAt"`
}
