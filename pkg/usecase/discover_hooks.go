package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

// DiscoverHooks inspects the default branch of each repository and returns the repositories that
// declare the repo-stream hook. Repositories that can not be used are reported in the returned
// results as skipped or failed. Only transport errors are returned as error.
func (x *UseCase) DiscoverHooks(ctx context.Context, repos []*model.GitHubRepo) ([]*model.HookRecord, []model.RepoResult, error) {
	var (
		hooks   []*model.HookRecord
		results []model.RepoResult
	)

	for _, repo := range repos {
		hook, err := x.discoverHook(ctx, repo)
		switch {
		case err == nil && hook == nil:
			results = append(results, model.RepoResult{Repo: *repo, Status: model.RepoStatusSkipped})

		case err == nil:
			hooks = append(hooks, hook)

		case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrParseFailure):
			logging.From(ctx).Warn("Failed to read repo-stream hook",
				slog.String("repo", repo.FullName()),
				slog.Any("error", err),
			)
			results = append(results, model.RepoResult{Repo: *repo, Status: model.RepoStatusFailed, Err: err})

		default:
			return nil, nil, err
		}
	}

	return hooks, results, nil
}

// discoverHook returns nil without error when repo does not use the hook.
func (x *UseCase) discoverHook(ctx context.Context, repo *model.GitHubRepo) (*model.HookRecord, error) {
	logger := logging.From(ctx).With(slog.String("repo", repo.FullName()))
	gh := x.clients.GitHub()

	branch, err := gh.GetDefaultBranch(ctx, repo)
	if err != nil {
		return nil, err
	}

	paths, err := gh.ListTree(ctx, repo, branch)
	if err != nil {
		return nil, err
	}

	var found bool
	for _, path := range paths {
		if path == model.PreCommitConfigFile {
			found = true
			break
		}
	}
	if !found {
		logger.Debug("No pre-commit config", slog.String("branch", branch))
		return nil, nil
	}

	data, err := gh.GetFileContent(ctx, repo, branch, model.PreCommitConfigFile)
	if err != nil {
		return nil, err
	}

	cfg, err := model.ParsePreCommitConfig(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid pre-commit config", goerr.V("repo", repo.FullName()))
	}

	hook := cfg.FindHook(model.HookRepoURL, model.HookID)
	if hook == nil {
		logger.Debug("repo-stream hook is not declared")
		return nil, nil
	}

	args := model.ParseHookArgs(hook.Args)
	if args.Config == "" || args.Updater == "" {
		return nil, goerr.Wrap(types.ErrParseFailure, "repo-stream hook requires both --config and --updater",
			goerr.V("repo", repo.FullName()),
			goerr.V("args", hook.Args),
		)
	}

	configRepo, err := model.ParseGitHubRepo(strings.TrimSuffix(args.Config, ".git"))
	if err != nil {
		return nil, goerr.Wrap(types.ErrParseFailure, "repo-stream hook has invalid --config",
			goerr.V("repo", repo.FullName()),
			goerr.V("config", args.Config),
		)
	}

	record := &model.HookRecord{
		Repo:          *repo,
		DefaultBranch: branch,
		Config:        *configRepo,
		Updater:       args.Updater,
	}
	logger.Info("Found repo-stream hook",
		slog.String("branch", branch),
		slog.String("trigger", record.Trigger()),
	)

	return record, nil
}
