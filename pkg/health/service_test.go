package health

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/activity"
	"github.com/creatorbridge/api/ent/enttest"
	"github.com/creatorbridge/api/ent/milestone"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func defaultService(db *ent.Client) *Service {
	return NewService(db,
		Weights{Email: 0.25, Milestone: 0.25, Activity: 0.25, Progress: 0.25},
		Thresholds{GreenMin: 80, YellowMin: 50},
	)
}

func TestRecompute_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := defaultService(db)

	_, err := svc.Recompute(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestRecompute_FreshClient(t *testing.T) {
	db := setupTestDB(t)
	svc := defaultService(db)
	ctx := context.Background()

	cl := db.Creator.Create().
		SetName("Ava Creator").
		SaveX(ctx)

	res, err := svc.Recompute(ctx, cl.ID)
	require.NoError(t, err)

	// No activities, no milestones (neutral 50), no progress.
	// 0*0.25 + 50*0.25 + 0*0.25 + 0*0.25 = 12.5 -> 13
	assert.Equal(t, 13, res.Score)
	assert.Equal(t, StatusRed, res.Status)
	assert.Len(t, res.Factors, 4)
	assert.Equal(t, 50, res.Factors[FactorMilestoneCompletion].Score)
	assert.Equal(t, 0.25, res.Factors[FactorMilestoneCompletion].Weight)
}

func TestRecompute_PersistsScoreAndFactors(t *testing.T) {
	db := setupTestDB(t)
	svc := defaultService(db)
	ctx := context.Background()

	cl := db.Creator.Create().
		SetName("Ben Builder").
		SetJourneyProgress(70).
		SaveX(ctx)

	// Four emails in the last 30 days -> email sub-score 80.
	for i := 0; i < 4; i++ {
		db.Activity.Create().
			SetClientID(cl.ID).
			SetType(activity.TypeEmail).
			SetDescription("weekly check-in").
			SetCreatedAt(time.Now().AddDate(0, 0, -i)).
			SaveX(ctx)
	}

	// 3 of 5 milestones completed -> 60.
	for i := 0; i < 5; i++ {
		b := db.Milestone.Create().
			SetClientID(cl.ID).
			SetTitle("milestone")
		if i < 3 {
			b.SetStatus(milestone.StatusCompleted)
		}
		b.SaveX(ctx)
	}

	res, err := svc.Recompute(ctx, cl.ID)
	require.NoError(t, err)

	// Latest activity is today -> recency 100.
	// 80*0.25 + 60*0.25 + 100*0.25 + 70*0.25 = 77.5 -> 78
	assert.Equal(t, 78, res.Score)
	assert.Equal(t, StatusYellow, res.Status)

	stored := db.Creator.GetX(ctx, cl.ID)
	assert.Equal(t, 78, stored.HealthScore)
	assert.NotNil(t, stored.HealthUpdatedAt)
	assert.Equal(t, 80, stored.HealthFactors[FactorEmailActivity].Score)
	assert.Equal(t, 60, stored.HealthFactors[FactorMilestoneCompletion].Score)
	assert.Equal(t, 100, stored.HealthFactors[FactorActivityRecency].Score)
	assert.Equal(t, 70, stored.HealthFactors[FactorProjectProgress].Score)
}

func TestRecompute_OldEmailsIgnored(t *testing.T) {
	db := setupTestDB(t)
	svc := defaultService(db)
	ctx := context.Background()

	cl := db.Creator.Create().
		SetName("Cara Old").
		SaveX(ctx)

	db.Activity.Create().
		SetClientID(cl.ID).
		SetType(activity.TypeEmail).
		SetDescription("ancient email").
		SetCreatedAt(time.Now().AddDate(0, 0, -45)).
		SaveX(ctx)

	res, err := svc.Recompute(ctx, cl.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Factors[FactorEmailActivity].Score)
	// The 45-day-old activity still drives recency, scoring 0.
	assert.Equal(t, 0, res.Factors[FactorActivityRecency].Score)
}

func TestRecompute_EmailScoreCapped(t *testing.T) {
	db := setupTestDB(t)
	svc := defaultService(db)
	ctx := context.Background()

	cl := db.Creator.Create().
		SetName("Dana Busy").
		SaveX(ctx)

	for i := 0; i < 12; i++ {
		db.Activity.Create().
			SetClientID(cl.ID).
			SetType(activity.TypeEmail).
			SetDescription("ping").
			SaveX(ctx)
	}

	res, err := svc.Recompute(ctx, cl.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Factors[FactorEmailActivity].Score)
}

func TestRecomputeAll(t *testing.T) {
	db := setupTestDB(t)
	svc := defaultService(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		db.Creator.Create().SetName("client").SetJourneyProgress(100).SaveX(ctx)
	}

	updated, failed, err := svc.RecomputeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, updated)
	assert.Equal(t, 0, failed)

	clients := db.Creator.Query().AllX(ctx)
	for _, cl := range clients {
		assert.NotZero(t, cl.HealthScore)
		assert.NotNil(t, cl.HealthUpdatedAt)
	}
}
