package scoring

import "math"

// ScoreResume combines resume-side signals into a 0..1 component: category
// coverage (6 categories saturate), project count (5 lines saturate) and the
// education flag, each under its configured weight.
func ScoreResume(signals map[string][]string, projects []string, educationFlag bool) float64 {
	libsStrength := clamp01(float64(len(signals)) / 6)
	projectsStrength := clamp01(float64(len(projects)) / 5)
	eduStrength := 0.0
	if educationFlag {
		eduStrength = 1.0
	}
	return Weights["libs_detected"]*libsStrength +
		Weights["projects_in_resume"]*projectsStrength +
		Weights["education_courses"]*eduStrength
}

// ScoreGithub combines portfolio depth (share of repos with ML libraries,
// against a floor of 3) and proof strength (5 such repos saturate) into a
// 0..1 component.
func ScoreGithub(repoLibUsage map[string][]string, totalRepos int) float64 {
	denom := totalRepos
	if denom == 0 {
		denom = 1
	}
	if denom < 3 {
		denom = 3
	}
	portfolioDepth := clamp01(float64(len(repoLibUsage)) / float64(denom))
	proofStrength := clamp01(float64(len(repoLibUsage)) / 5)
	return Weights["portfolio_depth"]*portfolioDepth +
		Weights["github_proof"]*proofStrength
}

// FinalScore blends the two components with the bonus (0..1, worth up to 10
// raw points), clamps and scales to an integer 0..100.
func FinalScore(resumeComponent, githubComponent, llmBonus float64) int {
	raw := resumeComponent + githubComponent + 0.10*clamp01(llmBonus)
	return int(math.Round(clamp01(raw) * 100))
}

// ToLevel maps a score to its qualitative label by scanning the descending
// threshold table. The trailing default cannot be reached with the 0-floor
// table but stays as a safety net.
func ToLevel(score int) string {
	for _, l := range Levels {
		if score >= l.Min {
			return l.Label
		}
	}
	return "Beginner"
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
