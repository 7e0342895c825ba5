package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/interfaces"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/utils/errutil"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

// parseGitHubEvent verifies the signature of a webhook request and converts it to an update
// request. nil means the event does not require an update.
func parseGitHubEvent(r *http.Request, key types.GitHubAppSecret) (*model.UpdateRepoInput, error) {
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "validating payload", goerr.V("error", err.Error()))
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "parsing webhook", goerr.V("error", err.Error()))
	}

	logging.From(r.Context()).Info("Received GitHub event", slog.String("type", github.WebHookType(r)))

	return githubEventToUpdateInput(r.Context(), event), nil
}

func refToBranch(v string) string {
	if ref := strings.SplitN(v, "/", 3); len(ref) == 3 && ref[0] == "refs" && ref[1] == "heads" {
		return ref[2]
	}
	return v
}

func githubEventToUpdateInput(ctx context.Context, event any) *model.UpdateRepoInput {
	logger := logging.From(ctx)

	switch ev := event.(type) {
	case *github.PushEvent:
		repo := model.GitHubRepo{
			Owner: ev.GetRepo().GetOwner().GetLogin(),
			Name:  ev.GetRepo().GetName(),
		}
		branch := refToBranch(ev.GetRef())

		if ev.GetDeleted() {
			logger.Debug("ignore branch deletion", slog.String("repo", repo.FullName()), slog.String("ref", ev.GetRef()))
			return nil
		}
		if branch != ev.GetRepo().GetDefaultBranch() {
			logger.Debug("ignore push to non-default branch",
				slog.String("repo", repo.FullName()),
				slog.String("branch", branch),
			)
			return nil
		}
		if err := repo.Validate(); err != nil {
			logger.Warn("ignore push event without repository", slog.Any("error", err))
			return nil
		}

		return &model.UpdateRepoInput{Repo: repo}

	case *github.PingEvent, *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return nil // ignore

	default:
		logger.Warn("unsupported event", slog.String("event", fmt.Sprintf("%T", event)))
		return nil
	}
}

// runUpdateRepository is called by updateWorker with a detached context.
func runUpdateRepository(ctx context.Context, uc interfaces.UseCase, input *model.UpdateRepoInput) {
	logger := logging.From(ctx).With(slog.String("repo", input.Repo.FullName()))
	logger.Info("Starting repository update")

	result, err := uc.UpdateRepository(ctx, input)
	if err != nil {
		errutil.HandleError(ctx, "Background update failed", err)
		return
	}
	logger.Info("Repository update completed", slog.Any("result", result))
}
