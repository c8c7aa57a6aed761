package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"beacon/internal/domain"
)

// ClaimDue locks up to limit open, assessed, non-critical cases that have
// not been swept within recheck, stamps them as swept and returns them.
// SKIP LOCKED lets several sweepers share the table.
func (db *DB) ClaimDue(ctx context.Context, limit int, recheck time.Duration) (cases []domain.Case, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	rows, err := tx.Query(ctx, `
		SELECT `+caseColumns+` FROM cases
		WHERE status = 'open' AND priority_level > 0
		  AND (swept_at IS NULL OR swept_at < now() - $2::interval)
		ORDER BY swept_at NULLS FIRST, reported_at
		FOR UPDATE SKIP LOCKED
		LIMIT $1
	`, limit, recheck)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, limit)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		cases = append(cases, c)
		ids = append(ids, c.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	_, err = tx.Exec(ctx, `UPDATE cases SET swept_at = now() WHERE id = ANY($1::uuid[])`, ids)
	return cases, err
}

// ApplyEscalation moves a case up one level if it is still open at the
// level the decision was made from, and records the event.
func (db *DB) ApplyEscalation(ctx context.Context, ev domain.EscalationEvent) (applied bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE cases SET priority_level = $3, last_escalated_at = $4
		WHERE id = $1 AND priority_level = $2 AND status = 'open'
	`, ev.CaseID, int(ev.FromLevel), int(ev.ToLevel), ev.OccurredAt)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	if _, err = tx.Exec(ctx, `
		INSERT INTO case_priority_events (id, case_id, kind, jurisdiction, from_level, to_level, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, ev.EventID, ev.CaseID, string(domain.EventEscalated), ev.Jurisdiction, int(ev.FromLevel), int(ev.ToLevel), ev.Reason, ev.OccurredAt); err != nil {
		return false, err
	}
	return true, nil
}
