package usecase

import (
	"context"
	"log"

	"github.com/Shank312/ml-resume-scorer/internal/dto"
	"github.com/Shank312/ml-resume-scorer/internal/scoring"
	"github.com/Shank312/ml-resume-scorer/internal/service"
	"github.com/google/uuid"
)

// ScoreUsecase runs one scoring request end to end: resume signal
// extraction, optional GitHub analysis, judge bonus, weighted blend. All
// state is request-scoped; the only shared data is the immutable matrix.
type ScoreUsecase struct {
	github service.GithubServiceInterface
	judge  service.JudgeServiceInterface
}

const maxEvidenceProjects = 8

func NewScoreUsecase(github service.GithubServiceInterface, judge service.JudgeServiceInterface) *ScoreUsecase {
	return &ScoreUsecase{github: github, judge: judge}
}

// Score never fails: collaborator problems degrade to empty evidence or the
// heuristic-only bonus, and every formula is total.
func (uc *ScoreUsecase) Score(ctx context.Context, resumeText, githubURL string) *dto.ScoreResponse {
	requestID := uuid.NewString()

	signals := scoring.FindMLKeywords(resumeText)
	projects := scoring.InferProjects(resumeText)
	eduFlag := scoring.DetectEducationSignals(resumeText)

	gh := &service.GithubResult{RepoLibUsage: map[string][]string{}, LibsDetected: []string{}}
	if githubURL != "" {
		gh = uc.github.Analyze(ctx, githubURL)
	}

	resumeComponent := scoring.ScoreResume(signals, projects, eduFlag)
	githubComponent := scoring.ScoreGithub(gh.RepoLibUsage, len(gh.Repos))

	// The judge consumes GitHub-derived usage, so it runs strictly after the
	// analysis. Its failure paths all resolve inside ScoreBoost.
	bonus, rationale := uc.judge.ScoreBoost(ctx, resumeText, projects, signals, gh.RepoLibUsage)

	score := scoring.FinalScore(resumeComponent, githubComponent, bonus)
	level := scoring.ToLevel(score)

	log.Printf("request %s: score=%d level=%q repos=%d signals=%d projects=%d",
		requestID, score, level, len(gh.Repos), len(signals), len(projects))

	return &dto.ScoreResponse{
		Score: score,
		Level: level,
		Evidence: dto.ScoreEvidence{
			GithubReposCount: len(gh.Repos),
			MlLibsDetected:   scoring.SortedUnion(gh.LibsDetected, scoring.FlattenSignalLibs(signals)),
			ProjectsFound:    capProjects(projects),
			RepoLibUsage:     gh.RepoLibUsage,
			ResumeSignals:    signals,
			LlmRationale:     rationale,
		},
	}
}

func capProjects(projects []string) []string {
	if projects == nil {
		return []string{}
	}
	if len(projects) <= maxEvidenceProjects {
		return projects
	}
	return projects[:maxEvidenceProjects]
}
