package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Shank312/ml-resume-scorer/internal/scoring"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type GithubServiceInterface interface {
	Analyze(ctx context.Context, githubURL string) *GithubResult
}

// GithubResult is the portfolio evidence for one profile. Repos with no
// matched libraries are absent from RepoLibUsage.
type GithubResult struct {
	Repos        []string
	RepoLibUsage map[string][]string
	LibsDetected []string
}

type GithubService struct {
	client *resty.Client
	token  string
}

const maxRepos = 25

func NewGithubService(token string) *GithubService {
	client := resty.New().
		SetTimeout(20 * time.Second).
		SetHeader("Accept", "application/vnd.github+json")
	return &GithubService{client: client, token: token}
}

// ParseOwner extracts the owner handle from a bare handle or any
// github.com URL form ("https://github.com/owner?tab=repositories" etc).
func ParseOwner(githubURL string) string {
	parts := strings.Split(strings.Trim(githubURL, "/"), "/")
	for i, p := range parts {
		if strings.Contains(p, "github.com") {
			parts = parts[i+1:]
			break
		}
	}
	if len(parts) == 0 {
		return ""
	}
	owner := parts[0]
	if i := strings.IndexAny(owner, "?#"); i != -1 {
		owner = owner[:i]
	}
	return owner
}

// Analyze fetches the owner's most recently updated repositories and scans
// each README for skill-matrix libraries. Every failure is soft: a bad URL,
// an API error or a missing README degrade to empty evidence, never to a
// request failure.
func (s *GithubService) Analyze(ctx context.Context, githubURL string) *GithubResult {
	empty := &GithubResult{RepoLibUsage: map[string][]string{}, LibsDetected: []string{}}

	owner := ParseOwner(githubURL)
	if owner == "" {
		return empty
	}

	repos, err := s.fetchRepos(ctx, owner)
	if err != nil {
		log.Printf("github analysis skipped for %q: %v", owner, err)
		return empty
	}

	usage := make(map[string][]string)
	allHits := []string{}
	for _, repo := range repos {
		readme := s.fetchRepoReadme(ctx, owner, repo)
		libs := scoring.ScanLibsInText(readme)
		if len(libs) > 0 {
			usage[repo] = libs
			allHits = append(allHits, libs...)
		}
	}

	return &GithubResult{
		Repos:        repos,
		RepoLibUsage: usage,
		LibsDetected: scoring.SortedUnion(allHits),
	}
}

func (s *GithubService) fetchRepos(ctx context.Context, owner string) ([]string, error) {
	req := s.client.R().SetContext(ctx)
	if s.token != "" {
		req.SetHeader("Authorization", "Bearer "+s.token)
	}
	url := fmt.Sprintf("https://api.github.com/users/%s/repos?per_page=%d&sort=updated", owner, maxRepos)
	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch repos: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch repos: status %d", resp.StatusCode())
	}

	var names []string
	for _, repo := range gjson.Get(resp.String(), "#.name").Array() {
		if name := repo.String(); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// fetchRepoReadme returns the repo's README text, or "" when it has none or
// the fetch fails. A single missing README never aborts the analysis.
func (s *GithubService) fetchRepoReadme(ctx context.Context, owner, repo string) string {
	url := fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/HEAD/README.md", owner, repo)
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil || resp.StatusCode() != http.StatusOK {
		return ""
	}
	return resp.String()
}
