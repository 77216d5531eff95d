package config

import (
	"os"
	"sync"
)

type GithubConfig struct {
	Token string // optional, raises the API rate limit when present
}

var (
	githubConfig *GithubConfig
	githubOnce   sync.Once
)

func LoadGithubConfig() *GithubConfig {
	githubOnce.Do(func() {
		githubConfig = &GithubConfig{
			Token: os.Getenv("GITHUB_TOKEN"),
		}
	})
	return githubConfig
}
