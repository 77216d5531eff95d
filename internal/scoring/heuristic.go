package scoring

import "strings"

// Reference sets for engineering-proof signals found in GitHub repos.
var (
	mlopsSignals   = []string{"mlflow", "docker", "dvc", "prefect", "airflow"}
	deploySignals  = []string{"fastapi", "flask", "streamlit", "onnx"}
	dlSignals      = []string{"torch", "pytorch", "tensorflow", "tf", "keras"}
	classicSignals = []string{"scikit-learn", "sklearn", "xgboost", "lightgbm", "catboost"}
)

// Heuristic term weights. They sum to 1.0, so the final clamp only guards
// float rounding.
const (
	overlapWeight = 0.40
	mlopsWeight   = 0.20
	deployWeight  = 0.20
	dlWeight      = 0.10
	classicWeight = 0.10
)

// EngineerHeuristic computes a deterministic 0..1 "proof of engineering"
// score from resume signals and per-repo library usage: resume↔GitHub
// library overlap plus flat bonuses for MLOps, deployment, deep-learning
// and classical-ML signals on the GitHub side.
func EngineerHeuristic(signals map[string][]string, repoLibUsage map[string][]string) float64 {
	resumeLibs := FlattenSignalLibs(signals)
	ghLibs := flattenRepoLibs(repoLibUsage)

	score := overlapWeight * overlapRatio(resumeLibs, ghLibs)
	if intersects(ghLibs, mlopsSignals) {
		score += mlopsWeight
	}
	if intersects(ghLibs, deploySignals) {
		score += deployWeight
	}
	if intersects(ghLibs, dlSignals) {
		score += dlWeight
	}
	if intersects(ghLibs, classicSignals) {
		score += classicWeight
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// overlapRatio is |a ∩ b| / max(|a|, |b|) over lowercased sets, 0.0 when
// either side is empty so absence is never rewarded.
func overlapRatio(a, b []string) float64 {
	sa := lowerSet(a)
	sb := lowerSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0.0
	}
	inter := 0
	for k := range sa {
		if _, ok := sb[k]; ok {
			inter++
		}
	}
	return float64(inter) / float64(max(len(sa), len(sb)))
}

func flattenRepoLibs(repoLibUsage map[string][]string) []string {
	set := make(map[string]struct{})
	for _, libs := range repoLibUsage {
		for _, l := range libs {
			set[l] = struct{}{}
		}
	}
	return sortedSet(set)
}

func lowerSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, v := range list {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

func intersects(libs []string, reference []string) bool {
	ref := lowerSet(reference)
	for _, l := range libs {
		if _, ok := ref[strings.ToLower(l)]; ok {
			return true
		}
	}
	return false
}
