package model

import "log/slog"

type RepoStatus string

const (
	RepoStatusCreated   RepoStatus = "created"
	RepoStatusDryRun    RepoStatus = "dry_run"
	RepoStatusDuplicate RepoStatus = "duplicate"
	RepoStatusUnchanged RepoStatus = "unchanged"
	RepoStatusSkipped   RepoStatus = "skipped"
	RepoStatusFailed    RepoStatus = "failed"
)

type RepoResult struct {
	Repo           GitHubRepo
	Status         RepoStatus
	PullRequestURL string
	Err            error
}

func (x RepoResult) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("repo", x.Repo.FullName()),
		slog.String("status", string(x.Status)),
	}
	if x.PullRequestURL != "" {
		attrs = append(attrs, slog.String("pull_request", x.PullRequestURL))
	}
	if x.Err != nil {
		attrs = append(attrs, slog.String("error", x.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// OwnerResult holds the outcome for one account. Err is set when the account failed as a whole,
// i.e. the user was not found or an updater could not be resolved.
type OwnerResult struct {
	Owner string
	Err   error
	Repos []RepoResult
}

func (x *OwnerResult) Count(status RepoStatus) int {
	var n int
	for _, r := range x.Repos {
		if r.Status == status {
			n++
		}
	}
	return n
}

type RunResult struct {
	Owners []OwnerResult
}

func (x *RunResult) ExitCode() int {
	for _, o := range x.Owners {
		if o.Err != nil {
			return 1
		}
	}
	return 0
}

func (x *RunResult) FailedOwners() []string {
	var owners []string
	for _, o := range x.Owners {
		if o.Err != nil {
			owners = append(owners, o.Owner)
		}
	}
	return owners
}
