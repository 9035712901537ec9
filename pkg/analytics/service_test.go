package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/document"
	"github.com/creatorbridge/api/ent/enttest"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/pkg/cache"
	"github.com/creatorbridge/api/pkg/health"

	_ "github.com/mattn/go-sqlite3"
)

func setupTest(t *testing.T) (*ent.Client, *Service, *miniredis.Miniredis) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	svc := NewService(db, cacheClient, health.Thresholds{GreenMin: 80, YellowMin: 50})
	return db, svc, mr
}

func TestOverview(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()

	// Three leads, one converted.
	db.Lead.Create().SetName("a").SaveX(ctx)
	db.Lead.Create().SetName("b").SetStage(lead.StageInterested).SaveX(ctx)
	cl := db.Creator.Create().SetName("converted").SetHealthScore(90).SaveX(ctx)
	db.Lead.Create().SetName("c").
		SetStage(lead.StageOnboarded).
		SetConvertedClientID(cl.ID).
		SaveX(ctx)

	db.Creator.Create().SetName("struggling").SetHealthScore(30).SaveX(ctx)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, overview.LeadsByStage["warm"])
	assert.Equal(t, 1, overview.LeadsByStage["interested"])
	assert.Equal(t, 1, overview.LeadsByStage["onboarded"])
	assert.InDelta(t, 33.33, overview.LeadConversionRate, 0.01)

	assert.Equal(t, 2, overview.ClientsByJourney["foundation"])
	assert.Equal(t, 1, overview.HealthDistribution["green"])
	assert.Equal(t, 1, overview.HealthDistribution["red"])
	assert.Equal(t, 0, overview.HealthDistribution["yellow"])
	assert.Equal(t, 60.0, overview.AverageHealthScore)
}

func TestOverview_Empty(t *testing.T) {
	_, svc, _ := setupTest(t)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, overview.LeadConversionRate)
	assert.Zero(t, overview.AverageHealthScore)
	assert.Empty(t, overview.LeadsByStage)
}

func TestOverview_Cached(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()

	db.Lead.Create().SetName("a").SaveX(ctx)

	first, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.LeadsByStage["warm"])

	// New data is invisible until the cache expires.
	db.Lead.Create().SetName("b").SaveX(ctx)
	second, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second.LeadsByStage["warm"])

	svc.InvalidateCache(ctx)
	third, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, third.LeadsByStage["warm"])
}

func TestOverview_CacheExpiry(t *testing.T) {
	db, svc, mr := setupTest(t)
	ctx := context.Background()

	db.Lead.Create().SetName("a").SaveX(ctx)
	_, err := svc.Overview(ctx)
	require.NoError(t, err)

	db.Lead.Create().SetName("b").SaveX(ctx)
	mr.FastForward(6 * time.Minute)

	fresh, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.LeadsByStage["warm"])
}

func TestDocumentPerformance(t *testing.T) {
	db, svc, _ := setupTest(t)
	ctx := context.Background()

	cl := db.Creator.Create().SetName("client").SaveX(ctx)
	kit := db.OnboardingKit.Create().
		SetClientID(cl.ID).
		SetMonth(1).
		SetGenerated(true).
		SetGeneratedAt(time.Now().Add(-48 * time.Hour)).
		SaveX(ctx)

	created := time.Now().Add(-48 * time.Hour)
	approved := time.Now().Add(-24 * time.Hour)

	// Two approved (24h latency each), one in revision, two pending.
	for slot := 1; slot <= 5; slot++ {
		builder := db.Document.Create().
			SetKitID(kit.ID).
			SetSlot(slot).
			SetName("Doc").
			SetCreatedAt(created).
			SetStatus(document.StatusGenerated)
		switch slot {
		case 1, 2:
			builder = builder.
				SetStatus(document.StatusApproved).
				SetApprovedAt(approved)
		case 3:
			builder = builder.
				SetStatus(document.StatusRevisionRequested).
				SetRevisionNotes("needs work")
		}
		builder.SaveX(ctx)
	}

	perf, err := svc.DocumentPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, perf.Months, 8)

	m1 := perf.Months[0]
	assert.Equal(t, 5, m1.Generated)
	assert.Equal(t, 2, m1.Approved)
	assert.Equal(t, 1, m1.RevisionRequests)
	assert.Equal(t, 40.0, m1.ApprovalRate)
	assert.InDelta(t, 24.0, m1.AvgApprovalLatency, 0.1)

	// Months without kits report zeros.
	assert.Zero(t, perf.Months[4].Generated)
	assert.Zero(t, perf.Months[4].ApprovalRate)
}

func TestNoCacheClient(t *testing.T) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	svc := NewService(db, nil, health.Thresholds{GreenMin: 80, YellowMin: 50})
	_, err := svc.Overview(context.Background())
	assert.NoError(t, err)
}
