package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub Git Worktree PreCommit

import (
	"context"

	"github.com/m-mizutani/repostream/pkg/domain/model"
)

// GitHub is the subset of the GitHub REST API used to discover hooks and publish pull requests.
type GitHub interface {
	ListUserRepositories(ctx context.Context, user string, includeForks bool) ([]*model.GitHubRepo, error)
	GetDefaultBranch(ctx context.Context, repo *model.GitHubRepo) (string, error)
	ListTree(ctx context.Context, repo *model.GitHubRepo, branch string) ([]string, error)
	GetFileContent(ctx context.Context, repo *model.GitHubRepo, branch, path string) ([]byte, error)
	ListPullRequests(ctx context.Context, repo *model.GitHubRepo) ([]*model.PullRequestSummary, error)
	CreatePullRequest(ctx context.Context, input *model.CreatePullRequestInput) (*model.CreatedPullRequest, error)
}

// Git clones repositories into a local directory.
type Git interface {
	Clone(ctx context.Context, repo *model.GitHubRepo, dir string) (Worktree, error)
}

// Worktree is a local clone. All methods operate on the clone only, except Push.
type Worktree interface {
	Dir() string
	CreateBranch(name string) error
	HasChanges() (bool, error)
	CommitAll(message string) error
	Push(ctx context.Context, branch string) error
}

// PreCommit runs the pre-commit tool. A non-zero exit code is not an error.
type PreCommit interface {
	Run(ctx context.Context, dir string, args []string) (int, error)
}
