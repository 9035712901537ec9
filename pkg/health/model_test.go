package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func daysToDuration(days int) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}

func TestScore_WeightedSum(t *testing.T) {
	w := Weights{Email: 0.25, Milestone: 0.25, Activity: 0.25, Progress: 0.25}
	s := SubScores{
		EmailActivity:       80,
		MilestoneCompletion: 60,
		ActivityRecency:     90,
		ProjectProgress:     70,
	}

	assert.Equal(t, 75, Score(w, s))
}

func TestScore_UnevenWeights(t *testing.T) {
	w := Weights{Email: 0.4, Milestone: 0.3, Activity: 0.2, Progress: 0.1}
	s := SubScores{
		EmailActivity:       100,
		MilestoneCompletion: 50,
		ActivityRecency:     0,
		ProjectProgress:     100,
	}

	// 40 + 15 + 0 + 10
	assert.Equal(t, 65, Score(w, s))
}

func TestScore_Bounds(t *testing.T) {
	w := Weights{Email: 0.25, Milestone: 0.25, Activity: 0.25, Progress: 0.25}

	assert.Equal(t, 0, Score(w, SubScores{}))
	assert.Equal(t, 100, Score(w, SubScores{
		EmailActivity:       100,
		MilestoneCompletion: 100,
		ActivityRecency:     100,
		ProjectProgress:     100,
	}))
}

func TestStatusFor(t *testing.T) {
	th := Thresholds{GreenMin: 80, YellowMin: 50}

	tests := []struct {
		score  int
		status string
	}{
		{100, StatusGreen},
		{80, StatusGreen},
		{79, StatusYellow},
		{75, StatusYellow},
		{50, StatusYellow},
		{49, StatusRed},
		{0, StatusRed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusFor(th, tt.score), "score %d", tt.score)
	}
}

func TestRecencyScore_Monotonic(t *testing.T) {
	prev := 101
	for _, days := range []int{0, 2, 5, 10, 20, 45} {
		score := recencyScore(daysToDuration(days))
		assert.LessOrEqual(t, score, prev, "recency score must not increase with age")
		prev = score
	}
}
