package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repostream/pkg/cli"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
)

func TestLoadExcludeFile(t *testing.T) {
	t.Run("ignores blank lines and comments", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "exclude.txt")
		body := "# forks we do not own\nblue/five\n\n  orange/six  \n#red/seven\n"
		gt.NoError(t, os.WriteFile(path, []byte(body), 0600))

		repos := gt.R1(cli.LoadExcludeFileForTest(path)).NoError(t)
		gt.V(t, repos).Equal([]string{"blue/five", "orange/six"})
	})

	t.Run("empty path means no exclusion", func(t *testing.T) {
		repos := gt.R1(cli.LoadExcludeFileForTest("")).NoError(t)
		gt.V(t, len(repos)).Equal(0)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := cli.LoadExcludeFileForTest(filepath.Join(t.TempDir(), "nothing.txt"))
		gt.Error(t, err)
	})
}

func TestParseRemoteURL(t *testing.T) {
	testCases := []struct {
		name    string
		url     string
		want    *model.GitHubRepo
		wantErr bool
	}{
		{
			name: "ssh",
			url:  "git@github.com:blue/five.git",
			want: &model.GitHubRepo{Owner: "blue", Name: "five"},
		},
		{
			name: "https",
			url:  "https://github.com/blue/five.git",
			want: &model.GitHubRepo{Owner: "blue", Name: "five"},
		},
		{
			name: "https without suffix",
			url:  "https://github.com/blue/five",
			want: &model.GitHubRepo{Owner: "blue", Name: "five"},
		},
		{
			name:    "other host",
			url:     "https://gitlab.com/blue/five.git",
			wantErr: true,
		},
		{
			name:    "missing name",
			url:     "https://github.com/blue",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := cli.ParseRemoteURLForTest(tc.url)
			if tc.wantErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrInvalidOption))
				return
			}
			gt.NoError(t, err)
			gt.V(t, repo).Equal(tc.want)
		})
	}
}

func TestResolveOwners(t *testing.T) {
	t.Run("arguments are used as is", func(t *testing.T) {
		owners := gt.R1(cli.ResolveOwnersForTest([]string{"blue", "orange"}, t.TempDir())).NoError(t)
		gt.V(t, owners).Equal([]string{"blue", "orange"})
	})

	t.Run("detected from origin remote", func(t *testing.T) {
		dir := t.TempDir()
		repo := gt.R1(git.PlainInit(dir, false)).NoError(t)
		gt.R1(repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"git@github.com:blue/five.git"},
		})).NoError(t)

		owners := gt.R1(cli.ResolveOwnersForTest(nil, dir)).NoError(t)
		gt.V(t, owners).Equal([]string{"blue"})

		detected := gt.R1(cli.DetectGitHubRepoForTest(dir)).NoError(t)
		gt.V(t, detected.FullName()).Equal("blue/five")
	})

	t.Run("not a git repository", func(t *testing.T) {
		_, err := cli.ResolveOwnersForTest(nil, t.TempDir())
		gt.Error(t, err)
	})

	t.Run("no origin remote", func(t *testing.T) {
		dir := t.TempDir()
		gt.R1(git.PlainInit(dir, false)).NoError(t)

		_, err := cli.ResolveOwnersForTest(nil, dir)
		gt.Error(t, err)
	})
}

func TestPrintRunSummary(t *testing.T) {
	result := &model.RunResult{
		Owners: []model.OwnerResult{
			{
				Owner: "blue",
				Repos: []model.RepoResult{
					{
						Repo:           model.GitHubRepo{Owner: "blue", Name: "five"},
						Status:         model.RepoStatusCreated,
						PullRequestURL: "https://github.com/blue/five/pull/1",
					},
					{
						Repo:   model.GitHubRepo{Owner: "blue", Name: "six"},
						Status: model.RepoStatusUnchanged,
					},
					{
						Repo:   model.GitHubRepo{Owner: "blue", Name: "seven"},
						Status: model.RepoStatusFailed,
						Err:    errors.New("clone failed"),
					},
				},
			},
			{
				Owner: "ghost",
				Err:   errors.New("user not found"),
			},
		},
	}

	var buf bytes.Buffer
	cli.PrintRunSummaryForTest(&buf, result)

	out := buf.String()
	gt.S(t, out).Contains("blue: created=1 dry_run=0 duplicate=0 unchanged=1 skipped=0 failed=1")
	gt.S(t, out).Contains("blue/five: created https://github.com/blue/five/pull/1")
	gt.S(t, out).Contains("blue/seven: failed (clone failed)")
	gt.S(t, out).Contains("ghost: created=0")
	gt.S(t, out).Contains("  error: user not found")
}

func TestPrintHookRecords(t *testing.T) {
	records := []*model.HookRecord{
		{
			Repo:          model.GitHubRepo{Owner: "blue", Name: "five"},
			DefaultBranch: "main",
			Config:        model.GitHubRepo{Owner: "blue", Name: "config"},
			Updater:       "upstream",
		},
	}

	var buf bytes.Buffer
	cli.PrintHookRecordsForTest(&buf, records)
	gt.V(t, buf.String()).Equal("blue/five\tmain\tblue/config/upstream.yaml\n")
}

func TestRunRejectsOwnersWithRepo(t *testing.T) {
	err := cli.New().Run([]string{"repostream", "update", "--repo", "blue/five", "orange"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestRunServeRequiresSecret(t *testing.T) {
	t.Setenv("REPOSTREAM_GITHUB_APP_SECRET", "")
	err := cli.New().Run([]string{"repostream", "serve"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestRunServeRejectsEmptyQueue(t *testing.T) {
	err := cli.New().Run([]string{"repostream", "serve", "--github-app-secret", "s3cr3t", "--queue-size", "0"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestRunInvalidLogLevel(t *testing.T) {
	err := cli.New().Run([]string{"repostream", "--log-level", "verbose", "discover", "blue"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}
