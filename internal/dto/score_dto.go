package dto

type ScoreRequest struct {
	GithubURL          string `json:"github_url"`
	ResumeTextOverride string `json:"resume_text_override"`
}

type ScoreEvidence struct {
	GithubReposCount int                 `json:"github_repos_count"`
	MlLibsDetected   []string            `json:"ml_libs_detected"`
	ProjectsFound    []string            `json:"projects_found"`
	RepoLibUsage     map[string][]string `json:"repo_lib_usage"`
	ResumeSignals    map[string][]string `json:"resume_signals"`
	LlmRationale     string              `json:"llm_rationale,omitempty"`
}

type ScoreResponse struct {
	Score    int           `json:"score"`
	Level    string        `json:"level"`
	Evidence ScoreEvidence `json:"evidence"`
}
