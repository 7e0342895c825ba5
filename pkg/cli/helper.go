package cli

import (
	"context"

	"github.com/m-mizutani/repostream/pkg/cli/config"
	"github.com/m-mizutani/repostream/pkg/infra"
	"github.com/m-mizutani/repostream/pkg/infra/gitrepo"
	"github.com/m-mizutani/repostream/pkg/usecase"
)

func newUseCase(ctx context.Context, gh *config.GitHub, git *config.Git, preCommit *config.PreCommit, branchPrefix string) (*usecase.UseCase, error) {
	ghClient, err := gh.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	gitOptions, err := gh.GitOptions(ctx)
	if err != nil {
		return nil, err
	}
	gitOptions = append(gitOptions, git.Options()...)

	clients := infra.New(
		infra.WithGitHub(ghClient),
		infra.WithGit(gitrepo.New(gitOptions...)),
		infra.WithPreCommit(preCommit.New()),
	)

	return usecase.New(clients, usecase.WithBranchPrefix(branchPrefix)), nil
}
