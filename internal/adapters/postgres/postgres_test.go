package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beacon/internal/domain"
	"beacon/internal/jurisdiction"
	"beacon/internal/priority"
)

// These tests run against a disposable database named by
// BEACON_TEST_DATABASE_URL and are skipped otherwise.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("BEACON_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("BEACON_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Migrate(ctx)
	require.NoError(t, err)
	_, err = db.Pool.Exec(ctx, `TRUNCATE cases CASCADE`)
	require.NoError(t, err)
	return db
}

func insertCase(t *testing.T, db *DB, jurisdictionID, factors string, reported time.Time) string {
	t.Helper()
	var id string
	err := db.Pool.QueryRow(context.Background(), `
		INSERT INTO cases (jurisdiction, factors, reported_at) VALUES ($1, $2::jsonb, $3) RETURNING id
	`, jurisdictionID, factors, reported).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestDB_AssessAndEscalate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	reported := time.Now().Add(-50 * time.Hour)
	id := insertCase(t, db, "ontario", `{"age": 30, "hourssMissing": 50}`, reported)

	c, err := db.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, c.Level)
	require.NotNil(t, c.Factors.HoursMissing)
	assert.Equal(t, 50.0, *c.Factors.HoursMissing)

	a := priority.Assess(jurisdiction.Default(), c.Factors, c.Jurisdiction)
	stored, err := db.SaveAssessment(ctx, id, a, time.Now())
	require.NoError(t, err)
	assert.Equal(t, priority.Low, stored)

	c, err = db.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, c.Level)
	assert.Equal(t, priority.Low, *c.Level)
	assert.Equal(t, a.Explanation, c.Explanation)

	due, err := db.ClaimDue(ctx, 10, time.Minute)
	require.NoError(t, err)
	require.Len(t, due, 1)

	again, err := db.ClaimDue(ctx, 10, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, again, "swept cases are not claimed again within the recheck window")

	ev := domain.EscalationEvent{
		EventID: "5b0c1f0e-8d0a-4a8e-9a53-0f7d3c2b1a11", CaseID: id, Jurisdiction: "ontario",
		FromLevel: priority.Low, ToLevel: priority.Medium, Reason: "test", OccurredAt: time.Now(),
	}
	applied, err := db.ApplyEscalation(ctx, ev)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = db.ApplyEscalation(ctx, ev)
	require.NoError(t, err)
	assert.False(t, applied, "a stale from-level must not apply")
}

func TestDB_GetUnknown(t *testing.T) {
	db := testDB(t)

	_, err := db.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)

	_, err = db.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestDB_ReassessmentKeepsEscalatedLevel(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	id := insertCase(t, db, "generic", `{"hoursMissing": 30}`, time.Now().Add(-200*time.Hour))

	c, err := db.Get(ctx, id)
	require.NoError(t, err)
	a := priority.Assess(jurisdiction.Default(), c.Factors, c.Jurisdiction)
	require.Equal(t, priority.Minimal, a.Level)
	_, err = db.SaveAssessment(ctx, id, a, time.Now())
	require.NoError(t, err)

	for _, step := range []struct{ from, to priority.Level }{
		{priority.Minimal, priority.Low},
		{priority.Low, priority.Medium},
		{priority.Medium, priority.High},
	} {
		applied, err := db.ApplyEscalation(ctx, domain.EscalationEvent{
			EventID: uuid.NewString(), CaseID: id, Jurisdiction: "generic",
			FromLevel: step.from, ToLevel: step.to, Reason: "test", OccurredAt: time.Now(),
		})
		require.NoError(t, err)
		require.True(t, applied)
	}

	stored, err := db.SaveAssessment(ctx, id, a, time.Now())
	require.NoError(t, err)
	assert.Equal(t, priority.High, stored)

	c, err = db.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, priority.High, *c.Level)

	// A more urgent score still moves the case up.
	urgent := priority.Assess(jurisdiction.Default(), priority.CaseRiskFactors{SuspectedAbduction: true, SuicidalRisk: true, Age: priority.Float(8)}, "")
	require.Equal(t, priority.Critical, urgent.Level)
	stored, err = db.SaveAssessment(ctx, id, urgent, time.Now())
	require.NoError(t, err)
	assert.Equal(t, priority.Critical, stored)
}
