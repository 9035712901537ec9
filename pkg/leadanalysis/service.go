package leadanalysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/creatorbridge/api/ent"
	"github.com/creatorbridge/api/pkg/ai/llm"
)

var (
	// ErrLeadNotFound is returned when the lead doesn't exist.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrNoAnalyzer is returned when no model client is configured.
	ErrNoAnalyzer = errors.New("no analysis client configured")
)

const analysisTimeout = 60 * time.Second

// Service runs fit analysis on leads. Analysis is best-effort: callers
// treat failure as "lead stays unanalyzed", never as a blocking error.
type Service struct {
	db  *ent.Client
	llm llm.Client
}

// NewService creates a new lead analysis service.
func NewService(db *ent.Client, llmClient llm.Client) *Service {
	return &Service{db: db, llm: llmClient}
}

// analysisResult is the JSON contract returned by the model.
type analysisResult struct {
	FitScore                  int      `json:"fitScore"`
	SentimentScore            float64  `json:"sentimentScore"`
	AISummary                 string   `json:"aiSummary"`
	Strengths                 []string `json:"strengths"`
	Concerns                  []string `json:"concerns"`
	Recommendations           string   `json:"recommendations"`
	EstimatedRevenuePotential string   `json:"estimatedRevenuePotential"`
}

// Analyze runs fit analysis for the lead and persists the result. On any
// failure the lead is left untouched (fit_score stays null) and the error
// is returned for the caller to log.
func (s *Service) Analyze(ctx context.Context, leadID int) error {
	if s.llm == nil {
		return ErrNoAnalyzer
	}

	l, err := s.db.Lead.Get(ctx, leadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrLeadNotFound
		}
		return fmt.Errorf("failed to fetch lead: %w", err)
	}

	analysisCtx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	raw, err := s.llm.Complete(analysisCtx, buildPrompt(l), systemPrompt)
	if err != nil {
		return fmt.Errorf("analysis call failed: %w", err)
	}

	result, err := parseResult(raw)
	if err != nil {
		return fmt.Errorf("failed to parse analysis response: %w", err)
	}

	_, err = s.db.Lead.UpdateOneID(leadID).
		SetFitScore(result.FitScore).
		SetSentimentScore(result.SentimentScore).
		SetAiSummary(result.AISummary).
		SetStrengths(result.Strengths).
		SetConcerns(result.Concerns).
		SetRecommendations(result.Recommendations).
		SetEstimatedRevenuePotential(result.EstimatedRevenuePotential).
		SetAnalyzedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist analysis: %w", err)
	}

	log.Printf("✅ Analyzed lead %d: fit=%d sentiment=%.2f", leadID, result.FitScore, result.SentimentScore)
	return nil
}

const systemPrompt = "You are a creator-relations analyst evaluating applicants for a creator accelerator program. " +
	"Respond with a single JSON object and nothing else."

func buildPrompt(l *ent.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Evaluate this lead's fit for a creator accelerator program.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", l.Name)
	if l.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", l.Company)
	}
	if l.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", l.Source)
	}
	if l.Summary != "" {
		fmt.Fprintf(&b, "\nSummary:\n%s\n", l.Summary)
	}
	if len(l.Answers) > 0 {
		b.WriteString("\nQuestionnaire answers:\n")
		for q, a := range l.Answers {
			fmt.Fprintf(&b, "- %s: %s\n", q, a)
		}
	}
	b.WriteString(`
Return JSON with exactly these fields:
{"fitScore": <0-100>, "sentimentScore": <0.0-1.0>, "aiSummary": "<2-3 sentences>", "strengths": ["..."], "concerns": ["..."], "recommendations": "<next steps>", "estimatedRevenuePotential": "<e.g. $50k-$100k/yr>"}`)
	return b.String()
}

// parseResult decodes the model response, tolerating markdown code fences,
// and clamps scores into their documented ranges.
func parseResult(raw string) (*analysisResult, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result analysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, err
	}

	if result.FitScore < 0 {
		result.FitScore = 0
	}
	if result.FitScore > 100 {
		result.FitScore = 100
	}
	if result.SentimentScore < 0 {
		result.SentimentScore = 0
	}
	if result.SentimentScore > 1 {
		result.SentimentScore = 1
	}
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.Concerns == nil {
		result.Concerns = []string{}
	}
	return &result, nil
}
