package leads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/auditlog"
	"github.com/creatorbridge/api/ent/enttest"
	"github.com/creatorbridge/api/ent/lead"
	"github.com/creatorbridge/api/ent/onboardingkit"
	"github.com/creatorbridge/api/pkg/audit"
	"github.com/creatorbridge/api/pkg/leadanalysis"
	"github.com/creatorbridge/api/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

type stubLLM struct {
	response string
}

func (s *stubLLM) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	return s.response, nil
}

// setupTest builds a service without background analysis so tests stay
// deterministic.
func setupTest(t *testing.T) (*ent.Client, *Service) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })
	return db, NewService(db, nil, audit.NewService(db))
}

func createUser(t *testing.T, db *ent.Client) int {
	u := db.User.Create().
		SetEmail("admin@creatorbridge.io").
		SetName("Admin").
		SaveX(context.Background())
	return u.ID
}

func TestCreate(t *testing.T) {
	_, svc := setupTest(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, models.LeadCreateRequest{
		Name:    "Maya Vlogs",
		Email:   "maya@example.com",
		Source:  "inbound",
		Summary: "Tech reviewer",
		Answers: map[string]string{"goal": "launch a course"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Maya Vlogs", resp.Name)
	assert.Equal(t, string(lead.StageWarm), resp.Stage)
	assert.Nil(t, resp.FitScore, "new lead starts unanalyzed")
	assert.Nil(t, resp.AnalyzedAt)
}

func TestList_FiltersAndPagination(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		db.Lead.Create().SetName("Warm Lead").SaveX(ctx)
	}
	db.Lead.Create().SetName("Hot Prospect").SetStage(lead.StageInterested).SaveX(ctx)

	resp, err := svc.List(ctx, ListFilters{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 10)
	assert.Equal(t, 26, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.False(t, resp.Pagination.HasPrev)

	resp, err = svc.List(ctx, ListFilters{Stage: "interested"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Hot Prospect", resp.Data[0].Name)

	resp, err = svc.List(ctx, ListFilters{Search: "prospect"})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
}

func TestUpdateStage(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()
	userID := createUser(t, db)

	l := db.Lead.Create().SetName("Lead").SaveX(ctx)

	resp, err := svc.UpdateStage(ctx, l.ID, userID, models.LeadStageUpdateRequest{
		Stage:  "interested",
		Reason: "replied to outreach",
	})
	require.NoError(t, err)
	assert.Equal(t, "interested", resp.Stage)

	history, err := svc.GetStageHistory(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "interested", history[0].NewStage)
	require.NotNil(t, history[0].OldStage)
	assert.Equal(t, "warm", *history[0].OldStage)
	require.NotNil(t, history[0].Reason)
	assert.Equal(t, "replied to outreach", *history[0].Reason)
	assert.Equal(t, "Admin", history[0].UserName)

	// Audit trail records the change.
	n := db.AuditLog.Query().
		Where(auditlog.ActionEQ(auditlog.ActionLeadStageChanged)).
		CountX(ctx)
	assert.Equal(t, 1, n)
}

func TestUpdateStage_SameStageNoHistory(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()
	userID := createUser(t, db)

	l := db.Lead.Create().SetName("Lead").SaveX(ctx)

	_, err := svc.UpdateStage(ctx, l.ID, userID, models.LeadStageUpdateRequest{Stage: "warm"})
	require.NoError(t, err)

	history, err := svc.GetStageHistory(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUpdateStage_NotFound(t *testing.T) {
	db, svc := setupTest(t)
	userID := createUser(t, db)

	_, err := svc.UpdateStage(context.Background(), 9999, userID, models.LeadStageUpdateRequest{Stage: "interested"})
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestReanalyze(t *testing.T) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	analysis := leadanalysis.NewService(db, &stubLLM{response: `{
		"fitScore": 77, "sentimentScore": 0.8, "aiSummary": "Good fit.",
		"strengths": ["niche"], "concerns": [], "recommendations": "Call them.",
		"estimatedRevenuePotential": "$30k/yr"
	}`})
	svc := NewService(db, analysis, audit.NewService(db))
	ctx := context.Background()

	l := db.Lead.Create().SetName("Lead").SaveX(ctx)

	resp, err := svc.Reanalyze(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.FitScore)
	assert.Equal(t, 77, *resp.FitScore)
	assert.NotNil(t, resp.AnalyzedAt)
}

func TestConvert(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()
	userID := createUser(t, db)

	l := db.Lead.Create().
		SetName("Maya Vlogs").
		SetEmail("maya@example.com").
		SetCompany("Maya Media").
		SetStage(lead.StageAlmostOnboarded).
		SaveX(ctx)

	cl, err := svc.Convert(ctx, l.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "Maya Vlogs", cl.Name)
	assert.Equal(t, "maya@example.com", cl.Email)
	assert.Equal(t, "foundation", cl.JourneyStage)

	// Lead is marked converted and onboarded.
	stored := db.Lead.GetX(ctx, l.ID)
	require.NotNil(t, stored.ConvertedClientID)
	assert.Equal(t, cl.ID, *stored.ConvertedClientID)
	assert.Equal(t, lead.StageOnboarded, stored.Stage)

	// Month 1 kit row exists, not yet generated.
	kit := db.OnboardingKit.Query().
		Where(onboardingkit.ClientID(cl.ID)).
		OnlyX(ctx)
	assert.Equal(t, 1, kit.Month)
	assert.False(t, kit.Generated)

	// Conversion is one-way.
	_, err = svc.Convert(ctx, l.ID, userID)
	assert.ErrorIs(t, err, ErrAlreadyConverted)
}

func TestCountsByStage(t *testing.T) {
	db, svc := setupTest(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		db.Lead.Create().SetName("w").SaveX(ctx)
	}
	db.Lead.Create().SetName("i").SetStage(lead.StageInterested).SaveX(ctx)

	counts, err := svc.CountsByStage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts["warm"])
	assert.Equal(t, 1, counts["interested"])
}
