package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
	"github.com/m-mizutani/repostream/pkg/utils/safe"
)

// Written next to the clone so that it never appears as a change in the working tree.
const localConfigFile = "._pre-commit-config.yaml"

// UpdateRepository runs the whole pipeline for a single repository. A repository without the
// hook results in RepoStatusSkipped.
func (x *UseCase) UpdateRepository(ctx context.Context, input *model.UpdateRepoInput) (*model.RepoResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hooks, results, err := x.DiscoverHooks(ctx, []*model.GitHubRepo{&input.Repo})
	if err != nil {
		return nil, err
	}
	if len(hooks) == 0 {
		return &results[0], nil
	}
	hook := hooks[0]

	if err := x.ResolveUpdaters(ctx, hooks); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return &model.RepoResult{Repo: input.Repo, Status: model.RepoStatusFailed, Err: err}, nil
		}
		return nil, err
	}

	result, err := x.updateHook(ctx, hook, input.DryRun)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// updateHook applies a resolved hook to its repository. Returned errors abort the run; failures
// scoped to the repository are reported in RepoResult.
func (x *UseCase) updateHook(ctx context.Context, hook *model.HookRecord, dryRun bool) (model.RepoResult, error) {
	result := model.RepoResult{Repo: hook.Repo}
	logger := logging.From(ctx).With(
		slog.String("repo", hook.Repo.FullName()),
		slog.String("trigger", hook.Trigger()),
	)

	if hook.UpdaterContent == nil {
		return result, goerr.Wrap(types.ErrValidationFailed, "updater is not resolved", goerr.V("repo", hook.Repo.FullName()))
	}

	defer x.lockRepository(&hook.Repo)()

	dup, err := x.HasDuplicatePullRequest(ctx, hook, x.branchPrefix)
	if err != nil {
		return result, err
	}
	if dup {
		result.Status = model.RepoStatusDuplicate
		return result, nil
	}

	tmpDir, err := os.MkdirTemp(x.tmpDir, fmt.Sprintf("repostream.%s.%s.*", hook.Repo.Owner, hook.Repo.Name))
	if err != nil {
		return result, goerr.Wrap(err, "failed to create temp directory")
	}
	defer safe.RemoveAll(tmpDir)

	wt, err := x.clients.Git().Clone(ctx, &hook.Repo, filepath.Join(tmpDir, "repo"))
	if err != nil {
		logger.Warn("Failed to clone repository", slog.Any("error", err))
		result.Status = model.RepoStatusFailed
		result.Err = err
		return result, nil
	}

	configPath := filepath.Join(tmpDir, localConfigFile)
	if err := os.WriteFile(configPath, []byte(*hook.UpdaterContent), 0o600); err != nil {
		return result, goerr.Wrap(err, "failed to write updater config", goerr.V("path", configPath))
	}

	branch := model.BranchName(x.branchPrefix, types.NewBranchSuffix())
	if err := wt.CreateBranch(branch); err != nil {
		return result, err
	}

	code, err := x.clients.PreCommit().Run(ctx, wt.Dir(), []string{"run", "--all-files", "-c", configPath})
	if err != nil {
		logger.Warn("Failed to run pre-commit", slog.Any("error", err))
		result.Status = model.RepoStatusFailed
		result.Err = err
		return result, nil
	}
	logger.Debug("pre-commit finished", slog.Int("exit_code", code))

	changed, err := wt.HasChanges()
	if err != nil {
		return result, err
	}
	if !changed {
		logger.Info("No changes")
		result.Status = model.RepoStatusUnchanged
		return result, nil
	}

	body := model.PullRequestBody(hook)
	if err := wt.CommitAll(model.PullRequestTitle + "\n\n" + body); err != nil {
		return result, err
	}

	if dryRun {
		logger.Info("Dry run, pull request is not created",
			slog.String("head", branch),
			slog.String("base", hook.DefaultBranch),
		)
		result.Status = model.RepoStatusDryRun
		return result, nil
	}

	if err := wt.Push(ctx, branch); err != nil {
		return result, err
	}

	pr, err := x.clients.GitHub().CreatePullRequest(ctx, &model.CreatePullRequestInput{
		Repo:  hook.Repo,
		Title: model.PullRequestTitle,
		Body:  body,
		Head:  branch,
		Base:  hook.DefaultBranch,
	})
	if err != nil {
		return result, err
	}

	logger.Info("Created pull request",
		slog.String("url", pr.URL),
		slog.String("author", pr.Author),
	)
	result.Status = model.RepoStatusCreated
	result.PullRequestURL = pr.URL
	return result, nil
}
