package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Shank312/ml-resume-scorer/internal/scoring"
	"github.com/tidwall/gjson"
)

type JudgeServiceInterface interface {
	ScoreBoost(ctx context.Context, resumeText string, projects []string, signals map[string][]string, repoLibUsage map[string][]string) (float64, string)
}

// JudgeService blends the deterministic engineering heuristic with a bounded
// bonus from an external LLM judge. It never returns an error: every failure
// mode degrades to half the heuristic score.
type JudgeService struct {
	generator ContentGenerator // nil when no credential is configured
	model     string
	mode      string
}

const (
	maxResumeExcerpt   = 6000
	maxSummaryEntries  = 8
	maxRationaleLength = 400
	bonusField         = "bonus_points_0_to_10"
)

var (
	bonusFieldPattern     = regexp.MustCompile(`"` + bonusField + `"\s*:\s*(\d+)`)
	rationaleFieldPattern = regexp.MustCompile(`"rationale"\s*:\s*"([^"]+)"`)
	smartQuoteReplacer    = strings.NewReplacer("“", `"`, "”", `"`, "’", "'")
)

func NewJudgeService(generator ContentGenerator, model, mode string) *JudgeService {
	return &JudgeService{generator: generator, model: model, mode: mode}
}

// ScoreBoost returns a normalized bonus in [0,1] and an optional rationale.
// Without a configured judge it returns half the heuristic immediately, with
// no network call; the same path handles every downstream failure.
func (s *JudgeService) ScoreBoost(ctx context.Context, resumeText string, projects []string, signals map[string][]string, repoLibUsage map[string][]string) (float64, string) {
	heur := scoring.EngineerHeuristic(signals, repoLibUsage)

	if s.generator == nil {
		log.Println("LLM bonus: no judge credential; returning heuristic*0.5")
		return round3(0.5 * heur), ""
	}

	prompt := s.buildPrompt(heur, resumeText, projects, signals, repoLibUsage)

	content, err := s.generator.GenerateContent(ctx, s.model, prompt)
	if err != nil {
		log.Printf("LLM bonus: judge call failed: %v", err)
		return round3(0.5 * heur), ""
	}

	bonus, rationale := parseJudgeResponse(strings.TrimSpace(content), heur)
	return float64(bonus) / 10.0, truncateRationale(rationale)
}

func (s *JudgeService) buildPrompt(heur float64, resumeText string, projects []string, signals map[string][]string, repoLibUsage map[string][]string) string {
	modePrompt := RelaxedPrompt
	if s.mode == "strict" {
		modePrompt = StrictPrompt
	}

	if signals == nil {
		signals = map[string][]string{}
	}
	summary := map[string]any{
		"projects_sample":       firstN(projects, maxSummaryEntries),
		"resume_signals":        signals,
		"repo_lib_usage_sample": firstRepoEntries(repoLibUsage, maxSummaryEntries),
	}
	summaryJSON, _ := json.Marshal(summary)

	return fmt.Sprintf(`%s

Heuristic pre-score (0..1): %.3f
Resume snippet (truncated to ~6k chars):
%s

Structured evidence:
%s
`, modePrompt, heur, truncateRunes(resumeText, maxResumeExcerpt), summaryJSON)
}

// parseJudgeResponse recovers the bonus integer and rationale from untrusted
// judge output. Tiers: the whole body (or its outermost brace block, smart
// quotes normalized) as a JSON object, then bare regex field extraction. The
// final default is half the heuristic expressed in points.
func parseJudgeResponse(content string, heur float64) (int, string) {
	defaultBonus := int(math.Round(10 * heur * 0.5))

	if block := extractJSONBlock(content); block != "" {
		parsed := gjson.Parse(block)
		bonus := defaultBonus
		if v := parsed.Get(bonusField); v.Exists() {
			bonus = int(v.Int())
		}
		return clampBonus(bonus), parsed.Get("rationale").String()
	}

	bonus := defaultBonus
	if m := bonusFieldPattern.FindStringSubmatch(content); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			bonus = n
		}
	}
	rationale := ""
	if m := rationaleFieldPattern.FindStringSubmatch(strings.ReplaceAll(content, "\n", " ")); m != nil {
		rationale = m[1]
	}
	return clampBonus(bonus), rationale
}

// extractJSONBlock returns a parseable JSON object from arbitrary LLM
// output, or "" when none can be found.
func extractJSONBlock(content string) string {
	if content == "" {
		return ""
	}
	if gjson.Valid(content) && gjson.Parse(content).IsObject() {
		return content
	}
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return ""
	}
	candidate := smartQuoteReplacer.Replace(content[start : end+1])
	if gjson.Valid(candidate) && gjson.Parse(candidate).IsObject() {
		return candidate
	}
	return ""
}

func clampBonus(bonus int) int {
	if bonus < 0 {
		return 0
	}
	if bonus > 10 {
		return 10
	}
	return bonus
}

func truncateRationale(rationale string) string {
	runes := []rune(rationale)
	if len(runes) <= maxRationaleLength {
		return rationale
	}
	return string(runes[:maxRationaleLength-3]) + "..."
}

func truncateRunes(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen])
}

func firstN(list []string, n int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) <= n {
		return list
	}
	return list[:n]
}

// firstRepoEntries keeps the prompt bounded: at most n repos, picked in
// sorted name order so the prompt is stable across runs.
func firstRepoEntries(repoLibUsage map[string][]string, n int) map[string][]string {
	names := make([]string, 0, len(repoLibUsage))
	for name := range repoLibUsage {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > n {
		names = names[:n]
	}
	sample := make(map[string][]string, len(names))
	for _, name := range names {
		sample[name] = repoLibUsage[name]
	}
	return sample
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
