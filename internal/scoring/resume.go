package scoring

import (
	"strings"
)

const (
	maxProjectLines  = 12
	maxProjectLength = 200
	minProjectLength = 8
)

// projectTriggers are substrings that mark a resume line as a likely project
// description, in addition to bullet markers.
var projectTriggers = []string{
	"project", "classifier", "detection", "regression", "segmentation",
	"forecast", "forecasting", "fine-tune", "finetune", "nlp", "vision",
	"deploy", "inference", "pipeline", "training", "streamlit", "api",
}

// educationKeywords are matched as plain lowercase substrings. Degree
// abbreviations plus the common MOOC platforms.
var educationKeywords = []string{
	"b.tech", "btech", "m.tech", "mtech",
	"b.sc", "bsc", "m.sc", "msc",
	"b.e", "be", "m.e", "me",
	"coursera", "udemy", "deeplearning.ai", "fast.ai",
	"andrew ng", "specialization", "nanodegree",
}

// FindMLKeywords scans resume text against the skill matrix and returns the
// matched keywords per category. Categories with no hits are absent from the
// result; matched keywords are deduplicated and sorted.
func FindMLKeywords(text string) map[string][]string {
	textLow := strings.ToLower(text)
	found := make(map[string][]string)
	for cat, keys := range MLSkillMatrix {
		hits := make(map[string]struct{})
		for _, k := range keys {
			if keywordPatterns[k].MatchString(textLow) {
				hits[k] = struct{}{}
			}
		}
		if len(hits) > 0 {
			found[cat] = sortedSet(hits)
		}
	}
	return found
}

// InferProjects extracts up to 12 candidate project lines: bullet lines or
// lines containing a trigger substring, between 8 and 200 characters.
// Duplicates are dropped, first-occurrence order is preserved.
func InferProjects(text string) []string {
	seen := make(map[string]struct{})
	projects := []string{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !isProjectLine(line) {
			continue
		}
		if n := len([]rune(line)); n < minProjectLength || n > maxProjectLength {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		projects = append(projects, line)
		if len(projects) == maxProjectLines {
			break
		}
	}
	return projects
}

func isProjectLine(line string) bool {
	if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
		return true
	}
	low := strings.ToLower(line)
	for _, t := range projectTriggers {
		if strings.Contains(low, t) {
			return true
		}
	}
	return false
}

// DetectEducationSignals reports whether the text mentions any degree or
// course keyword, case-insensitively.
func DetectEducationSignals(text string) bool {
	t := strings.ToLower(text)
	for _, k := range educationKeywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// FlattenSignalLibs collapses a category→keywords mapping into one sorted,
// deduplicated keyword list.
func FlattenSignalLibs(signals map[string][]string) []string {
	set := make(map[string]struct{})
	for _, libs := range signals {
		for _, l := range libs {
			set[l] = struct{}{}
		}
	}
	return sortedSet(set)
}

// SortedUnion merges string lists into one sorted, deduplicated list.
func SortedUnion(lists ...[]string) []string {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, v := range list {
			set[v] = struct{}{}
		}
	}
	return sortedSet(set)
}
