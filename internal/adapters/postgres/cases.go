package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"beacon/internal/domain"
	"beacon/internal/priority"
)

const caseColumns = `id, jurisdiction, factors, status, priority_level, priority_score,
	priority_explanation, profile_version, reported_at, last_assessed_at, last_escalated_at`

func scanCase(row pgx.Row) (domain.Case, error) {
	var (
		c           domain.Case
		factors     []byte
		explanation []byte
		status      string
		level       *int
	)
	err := row.Scan(&c.ID, &c.Jurisdiction, &factors, &status, &level, &c.Score,
		&explanation, &c.ProfileVersion, &c.ReportedAt, &c.LastAssessedAt, &c.LastEscalatedAt)
	if err != nil {
		return c, err
	}
	c.Status = domain.CaseStatus(status)
	if level != nil {
		l := priority.Level(*level)
		c.Level = &l
	}
	if err := json.Unmarshal(factors, &c.Factors); err != nil {
		return c, fmt.Errorf("decode factors of case %s: %w", c.ID, err)
	}
	if len(explanation) > 0 {
		if err := json.Unmarshal(explanation, &c.Explanation); err != nil {
			return c, fmt.Errorf("decode explanation of case %s: %w", c.ID, err)
		}
	}
	return c, nil
}

// Get loads a case by id.
func (db *DB) Get(ctx context.Context, caseID string) (domain.Case, error) {
	if _, err := uuid.Parse(caseID); err != nil {
		return domain.Case{}, domain.ErrCaseNotFound
	}
	c, err := scanCase(db.Pool.QueryRow(ctx, `SELECT `+caseColumns+` FROM cases WHERE id = $1`, caseID))
	if errors.Is(err, pgx.ErrNoRows) {
		return c, domain.ErrCaseNotFound
	}
	return c, err
}

// SaveAssessment writes the score, level and explanation onto the case and
// appends an audit event, in one transaction. A case that was auto-escalated
// keeps the more urgent of its current and assessed levels.
func (db *DB) SaveAssessment(ctx context.Context, caseID string, a priority.Assessment, at time.Time) (stored priority.Level, err error) {
	explanation, err := json.Marshal(a.Explanation)
	if err != nil {
		return 0, err
	}
	factors, err := json.Marshal(a.Factors)
	if err != nil {
		return 0, err
	}

	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var previous *int
	err = tx.QueryRow(ctx, `SELECT priority_level FROM cases WHERE id = $1 FOR UPDATE`, caseID).Scan(&previous)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrCaseNotFound
	}
	if err != nil {
		return 0, err
	}

	var level int
	if err = tx.QueryRow(ctx, `
		UPDATE cases
		SET priority_level = CASE
		        WHEN last_escalated_at IS NOT NULL AND priority_level IS NOT NULL THEN LEAST(priority_level, $2)
		        ELSE $2
		    END,
		    priority_score = $3, priority_explanation = $4,
		    profile_version = $5, last_assessed_at = $6
		WHERE id = $1
		RETURNING priority_level
	`, caseID, int(a.Level), a.Score, explanation, a.ProfileVersion, at).Scan(&level); err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO case_priority_events (id, case_id, kind, jurisdiction, from_level, to_level, score, factors, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, uuid.NewString(), caseID, string(domain.EventAssessed), a.Jurisdiction, previous, level, a.Score, factors, at)
	return priority.Level(level), err
}
