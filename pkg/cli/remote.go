package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
)

// detectGitHubRepo returns the repository that the origin remote of the git repository at dir
// points to.
func detectGitHubRepo(dir string) (*model.GitHubRepo, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get remote origin")
	}
	if len(remote.Config().URLs) == 0 {
		return nil, goerr.New("no remote URL found")
	}

	return parseRemoteURL(remote.Config().URLs[0])
}

// parseRemoteURL accepts both git@github.com:owner/repo.git and
// https://github.com/owner/repo.git forms.
func parseRemoteURL(url string) (*model.GitHubRepo, error) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		path = strings.SplitN(url, "github.com/", 2)[1]
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "remote is not a GitHub repository", goerr.V("url", url))
	}

	repo, err := model.ParseGitHubRepo(strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}
	return repo, nil
}
