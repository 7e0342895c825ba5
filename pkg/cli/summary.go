package cli

import (
	"fmt"
	"io"

	"github.com/m-mizutani/repostream/pkg/domain/model"
)

var summaryStatuses = []model.RepoStatus{
	model.RepoStatusCreated,
	model.RepoStatusDryRun,
	model.RepoStatusDuplicate,
	model.RepoStatusUnchanged,
	model.RepoStatusSkipped,
	model.RepoStatusFailed,
}

func printRunSummary(w io.Writer, result *model.RunResult) {
	for _, owner := range result.Owners {
		fmt.Fprintf(w, "%s:", owner.Owner)
		for _, status := range summaryStatuses {
			fmt.Fprintf(w, " %s=%d", status, owner.Count(status))
		}
		fmt.Fprintln(w)

		if owner.Err != nil {
			fmt.Fprintf(w, "  error: %s\n", owner.Err.Error())
		}
		for _, repo := range owner.Repos {
			printRepoResult(w, &repo)
		}
	}
}

func printRepoResult(w io.Writer, repo *model.RepoResult) {
	switch {
	case repo.PullRequestURL != "":
		fmt.Fprintf(w, "  %s: %s %s\n", repo.Repo.FullName(), repo.Status, repo.PullRequestURL)
	case repo.Err != nil:
		fmt.Fprintf(w, "  %s: %s (%s)\n", repo.Repo.FullName(), repo.Status, repo.Err.Error())
	default:
		fmt.Fprintf(w, "  %s: %s\n", repo.Repo.FullName(), repo.Status)
	}
}

func printHookRecords(w io.Writer, records []*model.HookRecord) {
	for _, record := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", record.Repo.FullName(), record.DefaultBranch, record.Trigger())
	}
}
