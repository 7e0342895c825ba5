package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

// HasDuplicatePullRequest reports whether an open pull request whose head branch starts with
// prefix already carries the config and updater of hook in its body.
func (x *UseCase) HasDuplicatePullRequest(ctx context.Context, hook *model.HookRecord, prefix string) (bool, error) {
	prs, err := x.clients.GitHub().ListPullRequests(ctx, &hook.Repo)
	if err != nil {
		return false, goerr.Wrap(err, "failed to list pull requests", goerr.V("repo", hook.Repo.FullName()))
	}

	for _, pr := range prs {
		if !strings.HasPrefix(pr.HeadRef, prefix) {
			continue
		}
		if model.ParsePullRequestMarker(pr.Body).Matches(hook) {
			logging.From(ctx).Info("Pull request already exists",
				slog.String("repo", hook.Repo.FullName()),
				slog.Int("number", pr.Number),
				slog.String("head", pr.HeadRef),
				slog.String("trigger", hook.Trigger()),
			)
			return true, nil
		}
	}

	return false, nil
}
