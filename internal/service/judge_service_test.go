package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response   string
	err        error
	calls      int
	lastModel  string
	lastPrompt string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, prompt string) (string, error) {
	f.calls++
	f.lastModel = model
	f.lastPrompt = prompt
	return f.response, f.err
}

// judgeFixture yields a heuristic of 0.40*(1/3)+0.20+0.20+0.10 ≈ 0.633.
func judgeFixture() (map[string][]string, map[string][]string) {
	signals := map[string][]string{"classical_ml": {"sklearn"}}
	usage := map[string][]string{"churn-model": {"sklearn", "docker", "fastapi"}}
	return signals, usage
}

const fixtureHeuristic = 0.40*(1.0/3.0) + 0.20 + 0.20 + 0.10

func TestScoreBoostNoCredential(t *testing.T) {
	judge := NewJudgeService(nil, "gemini-2.5-flash", "relaxed")
	signals, usage := judgeFixture()

	bonus, rationale := judge.ScoreBoost(context.Background(), "resume text", nil, signals, usage)

	assert.InDelta(t, round3(0.5*fixtureHeuristic), bonus, 1e-9)
	assert.Empty(t, rationale)
}

func TestScoreBoostStrictJSON(t *testing.T) {
	gen := &fakeGenerator{response: `{"bonus_points_0_to_10": 7, "rationale": "solid deployment evidence"}`}
	judge := NewJudgeService(gen, "gemini-2.5-flash", "relaxed")
	signals, usage := judgeFixture()

	bonus, rationale := judge.ScoreBoost(context.Background(), "resume", nil, signals, usage)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "gemini-2.5-flash", gen.lastModel)
	assert.InDelta(t, 0.7, bonus, 1e-9)
	assert.Equal(t, "solid deployment evidence", rationale)
}

func TestScoreBoostEmbeddedJSONWithSmartQuotes(t *testing.T) {
	gen := &fakeGenerator{response: "Sure, here is my judgment:\n{“bonus_points_0_to_10”: 4, “rationale”: “ok”}\nHope that helps."}
	judge := NewJudgeService(gen, "gemini-2.5-flash", "relaxed")
	signals, usage := judgeFixture()

	bonus, rationale := judge.ScoreBoost(context.Background(), "resume", nil, signals, usage)

	assert.InDelta(t, 0.4, bonus, 1e-9)
	assert.Equal(t, "ok", rationale)
}

func TestScoreBoostRegexFallback(t *testing.T) {
	// Truncated output: no parseable object, but the fields are recoverable.
	gen := &fakeGenerator{response: `{"bonus_points_0_to_10": 9, "rationale": "good work", "extra`}
	judge := NewJudgeService(gen, "gemini-2.5-flash", "relaxed")
	signals, usage := judgeFixture()

	bonus, rationale := judge.ScoreBoost(context.Background(), "resume", nil, signals, usage)

	assert.InDelta(t, 0.9, bonus, 1e-9)
	assert.Equal(t, "good work", rationale)
}

func TestScoreBoostUnparseableDefaultsToHalfHeuristic(t *testing.T) {
	gen := &fakeGenerator{response: "I am unable to produce a rating for this candidate."}
	judge := NewJudgeService(gen, "gemini-2.5-flash", "relaxed")
	signals, usage := judgeFixture()

	bonus, rationale := judge.ScoreBoost(context.Background(), "resume", nil, signals, usage)

	// round(10*h*0.5)/10 with h≈0.633 → 3/10
	assert.InDelta(t, 0.3, bonus, 1e-9)
	assert.Empty(t, rationale)
}

func TestScoreBoostGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("deadline exceeded")}
	judge := NewJudgeService(gen, "gemini-2.5-flash", "relaxed")
	signals, usage := judgeFixture()

	bonus, rationale := judge.ScoreBoost(context.Background(), "resume", nil, signals, usage)

	assert.InDelta(t, round3(0.5*fixtureHeuristic), bonus, 1e-9)
	assert.Empty(t, rationale)
}

func TestScoreBoostClampsBonus(t *testing.T) {
	gen := &fakeGenerator{response: `{"bonus_points_0_to_10": 42, "rationale": "overenthusiastic"}`}
	judge := NewJudgeService(gen, "gemini-2.5-flash", "strict")
	signals, usage := judgeFixture()

	bonus, _ := judge.ScoreBoost(context.Background(), "resume", nil, signals, usage)
	assert.InDelta(t, 1.0, bonus, 1e-9)

	gen.response = `{"bonus_points_0_to_10": -3}`
	bonus, _ = judge.ScoreBoost(context.Background(), "resume", nil, signals, usage)
	assert.Zero(t, bonus)
}

func TestScoreBoostTruncatesRationale(t *testing.T) {
	long := strings.Repeat("r", 450)
	gen := &fakeGenerator{response: `{"bonus_points_0_to_10": 5, "rationale": "` + long + `"}`}
	judge := NewJudgeService(gen, "gemini-2.5-flash", "relaxed")
	signals, usage := judgeFixture()

	_, rationale := judge.ScoreBoost(context.Background(), "resume", nil, signals, usage)

	require.Len(t, rationale, 400)
	assert.True(t, strings.HasSuffix(rationale, "..."))
}

func TestBuildPromptModeAndTruncation(t *testing.T) {
	gen := &fakeGenerator{response: "{}"}
	judge := NewJudgeService(gen, "gemini-2.5-flash", "strict")
	signals, usage := judgeFixture()

	longResume := strings.Repeat("a", 9000)
	judge.ScoreBoost(context.Background(), longResume, []string{"- a project"}, signals, usage)

	assert.Contains(t, gen.lastPrompt, "senior ML hiring manager")
	assert.NotContains(t, gen.lastPrompt, strings.Repeat("a", 6001))
	assert.Contains(t, gen.lastPrompt, "projects_sample")
	assert.Contains(t, gen.lastPrompt, "churn-model")

	relaxed := NewJudgeService(gen, "gemini-2.5-flash", "relaxed")
	relaxed.ScoreBoost(context.Background(), "short resume", nil, signals, usage)
	assert.Contains(t, gen.lastPrompt, "ML hiring screener")
}

func TestBuildPromptSampleLimits(t *testing.T) {
	gen := &fakeGenerator{response: "{}"}
	judge := NewJudgeService(gen, "gemini-2.5-flash", "relaxed")

	usage := map[string][]string{}
	for _, name := range []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "r9"} {
		usage[name] = []string{"docker"}
	}
	projects := make([]string, 12)
	for i := range projects {
		projects[i] = "- some project"
	}

	judge.ScoreBoost(context.Background(), "resume", projects, nil, usage)

	// first 8 repos in sorted name order; r9 sorts last and is dropped
	assert.Contains(t, gen.lastPrompt, `"r8"`)
	assert.NotContains(t, gen.lastPrompt, `"r9"`)
}

func TestExtractJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSONBlock(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, extractJSONBlock("noise {\"a\":1} trailing"))
	assert.Empty(t, extractJSONBlock("no braces at all"))
	assert.Empty(t, extractJSONBlock(""))
	assert.Empty(t, extractJSONBlock(`"just a string"`))
	assert.Empty(t, extractJSONBlock("{ not json }"))
}
