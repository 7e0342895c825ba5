package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

// updaterCache keeps default branches of config repositories and downloaded updater files
// for the lifetime of one run.
type updaterCache struct {
	branches map[string]string
	contents map[string]string
}

func newUpdaterCache() *updaterCache {
	return &updaterCache{
		branches: make(map[string]string),
		contents: make(map[string]string),
	}
}

// ResolveUpdaters downloads {config}/{default branch of config}/{updater}.yaml for each hook and
// stores it in UpdaterContent. It stops at the first hook that can not be resolved.
func (x *UseCase) ResolveUpdaters(ctx context.Context, hooks []*model.HookRecord) error {
	return x.resolveUpdaters(ctx, newUpdaterCache(), hooks)
}

func (x *UseCase) resolveUpdaters(ctx context.Context, cache *updaterCache, hooks []*model.HookRecord) error {
	for _, hook := range hooks {
		if err := x.resolveUpdater(ctx, cache, hook); err != nil {
			return err
		}
	}
	return nil
}

func (x *UseCase) resolveUpdater(ctx context.Context, cache *updaterCache, hook *model.HookRecord) error {
	gh := x.clients.GitHub()
	configName := hook.Config.FullName()

	// Updaters always come from the default branch of the config repository, whatever branch
	// the hooked repository is on.
	branch, ok := cache.branches[configName]
	if !ok {
		b, err := gh.GetDefaultBranch(ctx, &hook.Config)
		if err != nil {
			return goerr.Wrap(err, "failed to resolve config repository",
				goerr.V("repo", hook.Repo.FullName()),
				goerr.V("config", configName),
			)
		}
		branch = b
		cache.branches[configName] = branch
	}

	key := configName + "/" + branch + "/" + hook.UpdaterPath()
	if content, ok := cache.contents[key]; ok {
		hook.UpdaterContent = &content
		return nil
	}

	data, err := gh.GetFileContent(ctx, &hook.Config, branch, hook.UpdaterPath())
	if err != nil {
		return goerr.Wrap(err, "failed to download updater",
			goerr.V("repo", hook.Repo.FullName()),
			goerr.V("config", configName),
			goerr.V("branch", branch),
			goerr.V("updater", hook.Updater),
		)
	}

	content := string(data)
	cache.contents[key] = content
	hook.UpdaterContent = &content

	logging.From(ctx).Debug("Resolved updater",
		slog.String("repo", hook.Repo.FullName()),
		slog.String("source", key),
		slog.Int("size", len(content)),
	)
	return nil
}
