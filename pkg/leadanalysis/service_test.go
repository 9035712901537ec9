package leadanalysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
)

type stubLLM struct {
	response string
	err      error
	prompt   string
}

func (s *stubLLM) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func setupTest(t *testing.T, llm *stubLLM) (*ent.Client, *Service) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })
	return db, NewService(db, llm)
}

const validResponse = `{
	"fitScore": 82,
	"sentimentScore": 0.9,
	"aiSummary": "Strong creator with an engaged audience.",
	"strengths": ["consistent output", "clear niche"],
	"concerns": ["no monetization history"],
	"recommendations": "Schedule an intro call.",
	"estimatedRevenuePotential": "$50k-$100k/yr"
}`

func TestAnalyze_PersistsResult(t *testing.T) {
	llm := &stubLLM{response: validResponse}
	db, svc := setupTest(t, llm)
	ctx := context.Background()

	l := db.Lead.Create().
		SetName("Maya Vlogs").
		SetSummary("Tech reviewer, 200k subscribers").
		SetAnswers(map[string]string{"goal": "launch a course"}).
		SaveX(ctx)

	require.NoError(t, svc.Analyze(ctx, l.ID))

	stored := db.Lead.GetX(ctx, l.ID)
	require.NotNil(t, stored.FitScore)
	assert.Equal(t, 82, *stored.FitScore)
	require.NotNil(t, stored.SentimentScore)
	assert.Equal(t, 0.9, *stored.SentimentScore)
	assert.Equal(t, "Strong creator with an engaged audience.", stored.AiSummary)
	assert.Equal(t, []string{"consistent output", "clear niche"}, stored.Strengths)
	assert.Equal(t, []string{"no monetization history"}, stored.Concerns)
	assert.NotNil(t, stored.AnalyzedAt)

	// The prompt carries the lead's material.
	assert.Contains(t, llm.prompt, "Maya Vlogs")
	assert.Contains(t, llm.prompt, "200k subscribers")
	assert.Contains(t, llm.prompt, "launch a course")
}

func TestAnalyze_FailureLeavesLeadUnanalyzed(t *testing.T) {
	llm := &stubLLM{err: errors.New("model unavailable")}
	db, svc := setupTest(t, llm)
	ctx := context.Background()

	l := db.Lead.Create().SetName("Flaky Lead").SaveX(ctx)

	err := svc.Analyze(ctx, l.ID)
	require.Error(t, err)

	stored := db.Lead.GetX(ctx, l.ID)
	assert.Nil(t, stored.FitScore)
	assert.Nil(t, stored.AnalyzedAt)
}

func TestAnalyze_MalformedResponse(t *testing.T) {
	llm := &stubLLM{response: "sorry, I can't do that"}
	db, svc := setupTest(t, llm)
	ctx := context.Background()

	l := db.Lead.Create().SetName("Lead").SaveX(ctx)

	require.Error(t, svc.Analyze(ctx, l.ID))
	stored := db.Lead.GetX(ctx, l.ID)
	assert.Nil(t, stored.FitScore)
}

func TestAnalyze_NotFound(t *testing.T) {
	_, svc := setupTest(t, &stubLLM{response: validResponse})
	assert.ErrorIs(t, svc.Analyze(context.Background(), 9999), ErrLeadNotFound)
}

func TestAnalyze_NoClient(t *testing.T) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })
	svc := NewService(db, nil)

	assert.ErrorIs(t, svc.Analyze(context.Background(), 1), ErrNoAnalyzer)
}

func TestParseResult_CodeFences(t *testing.T) {
	result, err := parseResult("```json\n" + validResponse + "\n```")
	require.NoError(t, err)
	assert.Equal(t, 82, result.FitScore)
}

func TestParseResult_Clamping(t *testing.T) {
	result, err := parseResult(`{"fitScore": 150, "sentimentScore": -0.4}`)
	require.NoError(t, err)
	assert.Equal(t, 100, result.FitScore)
	assert.Equal(t, 0.0, result.SentimentScore)
	assert.NotNil(t, result.Strengths)
	assert.NotNil(t, result.Concerns)

	result, err = parseResult(`{"fitScore": -5, "sentimentScore": 3.2}`)
	require.NoError(t, err)
	assert.Equal(t, 0, result.FitScore)
	assert.Equal(t, 1.0, result.SentimentScore)
}
