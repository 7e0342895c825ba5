package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/types"
)

type UpdateOwnersInput struct {
	Owners       []string
	DryRun       bool
	IncludeForks bool
	ExcludeRepos []string
}

func (x *UpdateOwnersInput) Validate() error {
	if len(x.Owners) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "at least one owner is required")
	}
	for _, owner := range x.Owners {
		if owner == "" {
			return goerr.Wrap(types.ErrInvalidOption, "owner name is empty")
		}
	}
	return nil
}

// IsExcluded reports whether repo is listed in ExcludeRepos by its full name.
func (x *UpdateOwnersInput) IsExcluded(repo *GitHubRepo) bool {
	for _, name := range x.ExcludeRepos {
		if name == repo.FullName() {
			return true
		}
	}
	return false
}

type UpdateRepoInput struct {
	Repo   GitHubRepo
	DryRun bool
}

func (x *UpdateRepoInput) Validate() error {
	return x.Repo.Validate()
}
