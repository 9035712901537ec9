package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorbridge/api/ent"
	entclient "github.com/creatorbridge/api/ent/creator"
	"github.com/creatorbridge/api/ent/enttest"
	"github.com/creatorbridge/api/pkg/health"
	"github.com/creatorbridge/api/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupTest(t *testing.T) (*ent.Client, *Service) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	healthSvc := health.NewService(db,
		health.Weights{Email: 0.25, Milestone: 0.25, Activity: 0.25, Progress: 0.25},
		health.Thresholds{GreenMin: 80, YellowMin: 50},
	)
	return db, NewService(db, healthSvc)
}

func createClient(t *testing.T, db *ent.Client, name string, score int) int {
	cl := db.Creator.Create().
		SetName(name).
		SetHealthScore(score).
		SaveX(context.Background())
	return cl.ID
}

func TestGet_DerivesHealthStatus(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()

	tests := []struct {
		score  int
		status string
	}{
		{85, "green"},
		{75, "yellow"},
		{20, "red"},
	}

	for _, tt := range tests {
		id := createClient(t, db, "client", tt.score)
		resp, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, tt.status, resp.HealthStatus, "score %d", tt.score)
	}
}

func TestGet_NotFound(t *testing.T) {
	_, svc := setupTest(t)
	_, err := svc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestList_HealthStatusFilter(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()

	createClient(t, db, "green one", 90)
	createClient(t, db, "yellow one", 60)
	createClient(t, db, "red one", 10)

	resp, err := svc.List(ctx, ListFilters{HealthStatus: "green"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "green one", resp.Data[0].Name)

	resp, err = svc.List(ctx, ListFilters{HealthStatus: "yellow"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "yellow one", resp.Data[0].Name)

	resp, err = svc.List(ctx, ListFilters{HealthStatus: "red"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "red one", resp.Data[0].Name)
}

func TestList_JourneyStageFilter(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()

	db.Creator.Create().SetName("launching").SetJourneyStage(entclient.JourneyStageLaunch).SaveX(ctx)
	createClient(t, db, "starting", 0)

	resp, err := svc.List(ctx, ListFilters{JourneyStage: "launch"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "launching", resp.Data[0].Name)
}

func TestUpdate_ProgressTriggersRecompute(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()
	id := createClient(t, db, "client", 0)

	progress := 80
	resp, err := svc.Update(ctx, id, models.ClientUpdateRequest{JourneyProgress: &progress})
	require.NoError(t, err)

	assert.Equal(t, 80, resp.JourneyProgress)
	// Recompute ran: progress 80 and neutral milestones contribute.
	// 0*.25 + 50*.25 + 0*.25 + 80*.25 = 32.5 -> 33
	assert.Equal(t, 33, resp.HealthScore)
	assert.NotNil(t, resp.HealthUpdatedAt)
	assert.Len(t, resp.HealthFactors, 4)
}

func TestMilestoneLifecycle(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()
	id := createClient(t, db, "client", 0)

	m, err := svc.CreateMilestone(ctx, id, models.MilestoneCreateRequest{Title: "Publish first video"})
	require.NoError(t, err)
	assert.Equal(t, "not_started", m.Status)

	m, err = svc.UpdateMilestoneStatus(ctx, id, m.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", m.Status)
	assert.NotNil(t, m.CompletedAt)

	// Completion feeds the milestone sub-score.
	cl := db.Creator.GetX(ctx, id)
	assert.Equal(t, 100, cl.HealthFactors["milestone_completion"].Score)

	// Reopening clears completed_at.
	m, err = svc.UpdateMilestoneStatus(ctx, id, m.ID, "in_progress")
	require.NoError(t, err)
	assert.Nil(t, m.CompletedAt)

	list, err := svc.ListMilestones(ctx, id)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdateMilestoneStatus_WrongClient(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()
	id := createClient(t, db, "client", 0)
	other := createClient(t, db, "other", 0)

	m, err := svc.CreateMilestone(ctx, id, models.MilestoneCreateRequest{Title: "Milestone"})
	require.NoError(t, err)

	_, err = svc.UpdateMilestoneStatus(ctx, other, m.ID, "completed")
	assert.ErrorIs(t, err, ErrMilestoneNotFound)
}

func TestActivities(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()
	id := createClient(t, db, "client", 0)

	_, err := svc.CreateActivity(ctx, id, models.ActivityCreateRequest{
		Type:        "call",
		Description: "Kickoff call",
	})
	require.NoError(t, err)
	_, err = svc.CreateActivity(ctx, id, models.ActivityCreateRequest{
		Type:        "email",
		Description: "Sent welcome packet",
	})
	require.NoError(t, err)

	list, err := svc.ListActivities(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest first.
	assert.Equal(t, "Sent welcome packet", list[0].Description)
}

func TestActivities_ClientNotFound(t *testing.T) {
	_, svc := setupTest(t)
	_, err := svc.ListActivities(context.Background(), 9999, 10)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
