package scoring

import (
	"regexp"
	"sort"
	"strings"
)

// MLSkillMatrix maps a skill category to the library keywords that count as
// evidence for it. Used both for resume scanning and repo README scanning.
var MLSkillMatrix = map[string][]string{
	"python_data_stack": {"numpy", "pandas", "scipy", "matplotlib", "seaborn", "polars"},
	"classical_ml":      {"scikit-learn", "sklearn", "xgboost", "lightgbm", "catboost"},
	"deep_learning":     {"pytorch", "torch", "tensorflow", "tf", "keras"},
	"mlops":             {"mlflow", "dvc", "wandb", "onnx", "docker"},
	"deployment":        {"fastapi", "flask", "gradio", "streamlit"},
	"data_storage":      {"sql", "postgresql", "mysql", "mongodb", "snowflake", "bigquery"},
	"cv_nlp":            {"opencv", "transformers", "spacy", "nltk", "huggingface"},
}

// Weights for the scoring dimensions. Must sum to 1.0; the LLM bonus is
// additive on top, capped at +10 raw points.
var Weights = map[string]float64{
	"github_proof":       0.35,
	"libs_detected":      0.20,
	"projects_in_resume": 0.20,
	"portfolio_depth":    0.15,
	"education_courses":  0.10,
}

// Level is a (minimum score, label) pair.
type Level struct {
	Min   int
	Label string
}

// Levels is ordered by descending threshold; ToLevel returns the first label
// whose threshold the score meets.
var Levels = []Level{
	{85, "Strong ML Practitioner"},
	{70, "Solid ML Engineer"},
	{55, "Developing"},
	{0, "Beginner"},
}

// keywordPatterns holds one precompiled word-boundary-aware pattern per
// matrix keyword. Keywords may not be adjacent to another lowercase letter,
// so "pandas," and "(pandas)" match but "expandas" does not.
var keywordPatterns = compileKeywordPatterns()

func compileKeywordPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, keys := range MLSkillMatrix {
		for _, k := range keys {
			if _, ok := patterns[k]; ok {
				continue
			}
			patterns[k] = regexp.MustCompile(`(?:^|[^a-z])` + regexp.QuoteMeta(strings.ToLower(k)) + `(?:[^a-z]|$)`)
		}
	}
	return patterns
}

// ScanLibsInText returns the sorted set of matrix keywords present in text
// as plain substrings. READMEs are messy enough that word boundaries would
// cost more recall than the precision is worth.
func ScanLibsInText(text string) []string {
	textLow := strings.ToLower(text)
	hits := make(map[string]struct{})
	for _, keys := range MLSkillMatrix {
		for _, k := range keys {
			if strings.Contains(textLow, strings.ToLower(k)) {
				hits[k] = struct{}{}
			}
		}
	}
	return sortedSet(hits)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
