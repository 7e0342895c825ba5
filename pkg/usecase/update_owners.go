package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/utils/errutil"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

// UpdateOwners processes owners one by one. A failure of one owner is recorded in RunResult and
// the next owner is processed. The returned error means the run was aborted; RunResult then
// holds the owners processed so far.
func (x *UseCase) UpdateOwners(ctx context.Context, input *model.UpdateOwnersInput) (*model.RunResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	runID, ctx := logging.CtxRequestID(ctx)
	logger := logging.From(ctx).With(slog.Any("run_id", runID))
	ctx = logging.With(ctx, logger)

	logger.Info("Starting update",
		slog.Any("owners", input.Owners),
		slog.Bool("dry_run", input.DryRun),
		slog.Bool("include_forks", input.IncludeForks),
		slog.Int("excluded", len(input.ExcludeRepos)),
	)

	startedAt := logging.CtxTime(ctx)
	result := &model.RunResult{}
	cache := newUpdaterCache()

	for i, owner := range input.Owners {
		logger.Info("Processing owner",
			slog.Int("progress", i+1),
			slog.Int("total", len(input.Owners)),
			slog.String("owner", owner),
		)

		ownerResult, err := x.updateOwner(ctx, cache, owner, input)
		result.Owners = append(result.Owners, ownerResult)
		if err != nil {
			return result, goerr.Wrap(err, "update aborted", goerr.V("owner", owner))
		}
	}

	logger.Info("Completed update",
		slog.Int("owners", len(result.Owners)),
		slog.Any("failed_owners", result.FailedOwners()),
		slog.Int("exit_code", result.ExitCode()),
		slog.Duration("elapsed", logging.CtxTime(ctx).Sub(startedAt)),
	)

	return result, nil
}

func (x *UseCase) updateOwner(ctx context.Context, cache *updaterCache, owner string, input *model.UpdateOwnersInput) (model.OwnerResult, error) {
	result := model.OwnerResult{Owner: owner}
	logger := logging.From(ctx).With(slog.String("owner", owner))

	repos, err := x.clients.GitHub().ListUserRepositories(ctx, owner, input.IncludeForks)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			errutil.HandleError(ctx, "User not found", err)
			result.Err = err
			return result, nil
		}
		return result, err
	}

	var targets []*model.GitHubRepo
	for _, repo := range repos {
		if input.IsExcluded(repo) {
			logger.Debug("Excluded repository", slog.String("repo", repo.FullName()))
			continue
		}
		targets = append(targets, repo)
	}

	logger.Info("Retrieved repositories",
		slog.Int("total_repos", len(repos)),
		slog.Int("target_repos", len(targets)),
	)
	if len(targets) == 0 {
		return result, nil
	}

	hooks, repoResults, err := x.DiscoverHooks(ctx, targets)
	if err != nil {
		return result, err
	}
	result.Repos = append(result.Repos, repoResults...)

	if err := x.resolveUpdaters(ctx, cache, hooks); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			errutil.HandleError(ctx, "Updater not found", err)
			result.Err = err
			return result, nil
		}
		return result, err
	}

	for _, hook := range hooks {
		repoResult, err := x.updateHook(ctx, hook, input.DryRun)
		if err != nil {
			repoResult.Status = model.RepoStatusFailed
			repoResult.Err = err
			result.Repos = append(result.Repos, repoResult)
			return result, err
		}
		result.Repos = append(result.Repos, repoResult)
	}

	logger.Info("Completed owner",
		slog.Int("hooks", len(hooks)),
		slog.Int("created", result.Count(model.RepoStatusCreated)),
		slog.Int("dry_run", result.Count(model.RepoStatusDryRun)),
		slog.Int("duplicate", result.Count(model.RepoStatusDuplicate)),
		slog.Int("unchanged", result.Count(model.RepoStatusUnchanged)),
		slog.Int("failed", result.Count(model.RepoStatusFailed)),
	)

	return result, nil
}

// DiscoverOwners lists the repositories of owners that declare the repo-stream hook and
// downloads their updaters. Nothing is cloned. Unknown owners and missing updaters are logged
// and skipped.
func (x *UseCase) DiscoverOwners(ctx context.Context, input *model.UpdateOwnersInput) ([]*model.HookRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cache := newUpdaterCache()
	var all []*model.HookRecord

	for _, owner := range input.Owners {
		logger := logging.From(ctx).With(slog.String("owner", owner))

		repos, err := x.clients.GitHub().ListUserRepositories(ctx, owner, input.IncludeForks)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				logger.Warn("User not found")
				continue
			}
			return nil, err
		}

		var targets []*model.GitHubRepo
		for _, repo := range repos {
			if !input.IsExcluded(repo) {
				targets = append(targets, repo)
			}
		}

		hooks, _, err := x.DiscoverHooks(ctx, targets)
		if err != nil {
			return nil, err
		}

		for _, hook := range hooks {
			if err := x.resolveUpdater(ctx, cache, hook); err != nil {
				if !errors.Is(err, types.ErrNotFound) {
					return nil, err
				}
				logger.Warn("Updater not found",
					slog.String("repo", hook.Repo.FullName()),
					slog.String("trigger", hook.Trigger()),
				)
			}
			all = append(all, hook)
		}
	}

	return all, nil
}
