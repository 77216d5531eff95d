package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineerHeuristicEmpty(t *testing.T) {
	assert.Zero(t, EngineerHeuristic(nil, nil))
	assert.Zero(t, EngineerHeuristic(map[string][]string{}, map[string][]string{}))
}

func TestEngineerHeuristicResumeOnly(t *testing.T) {
	// No GitHub evidence means no overlap and no flat bonuses.
	signals := map[string][]string{"classical_ml": {"scikit-learn"}}
	assert.Zero(t, EngineerHeuristic(signals, nil))
}

func TestEngineerHeuristic(t *testing.T) {
	signals := map[string][]string{"classical_ml": {"sklearn"}}
	usage := map[string][]string{"churn-model": {"sklearn", "docker", "fastapi"}}

	// overlap 1/3, plus mlops (docker), deploy (fastapi), classic (sklearn)
	want := 0.40*(1.0/3.0) + 0.20 + 0.20 + 0.10
	assert.InDelta(t, want, EngineerHeuristic(signals, usage), 1e-9)
}

func TestEngineerHeuristicClamped(t *testing.T) {
	libs := []string{"sklearn", "docker", "fastapi", "pytorch"}
	signals := map[string][]string{"all": libs}
	usage := map[string][]string{"repo": libs}

	// full overlap and all four flat bonuses sum to exactly 1.0
	got := EngineerHeuristic(signals, usage)
	assert.InDelta(t, 1.0, got, 1e-9)
	assert.LessOrEqual(t, got, 1.0)
}

func TestEngineerHeuristicPure(t *testing.T) {
	signals := map[string][]string{"deep_learning": {"pytorch", "keras"}}
	usage := map[string][]string{"a": {"pytorch"}, "b": {"mlflow"}}
	assert.Equal(t, EngineerHeuristic(signals, usage), EngineerHeuristic(signals, usage))
}

func TestOverlapRatioCaseInsensitive(t *testing.T) {
	assert.InDelta(t, 1.0, overlapRatio([]string{"PyTorch"}, []string{"pytorch"}), 1e-9)
	assert.Zero(t, overlapRatio(nil, []string{"pytorch"}))
	assert.Zero(t, overlapRatio([]string{"pytorch"}, nil))
}
