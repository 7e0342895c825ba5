package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/types"
)

// GitHubRepo identifies a repository by owner and name.
type GitHubRepo struct {
	Owner string
	Name  string
}

func (x GitHubRepo) FullName() string {
	return x.Owner + "/" + x.Name
}

func (x GitHubRepo) String() string {
	return x.FullName()
}

func (x *GitHubRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is empty")
	}
	return nil
}

// ParseGitHubRepo parses "owner/name".
func ParseGitHubRepo(fullName string) (*GitHubRepo, error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository must be in owner/name form", goerr.V("repo", fullName))
	}
	return &GitHubRepo{Owner: parts[0], Name: parts[1]}, nil
}

// RepoURLToFullName drops the scheme and host of a repository URL and returns the rest of the
// path. "https://github.com/owner/name" becomes "owner/name". A trailing ".git" is kept.
func RepoURLToFullName(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 4 {
		return ""
	}
	return strings.Join(parts[3:], "/")
}
