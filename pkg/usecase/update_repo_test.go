package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
)

func TestUpdateRepository(t *testing.T) {
	t.Run("repository with hook", func(t *testing.T) {
		env := newTestEnv()
		uc, set := env.build(t)

		result := gt.R1(uc.UpdateRepository(context.Background(), &model.UpdateRepoInput{
			Repo: model.GitHubRepo{Owner: "alice", Name: "proj"},
		})).NoError(t)
		gt.V(t, result.Status).Equal(model.RepoStatusCreated)
		gt.V(t, len(set.gh.CreatePullRequestCalls())).Equal(1)
		assertEmptyDir(t, env.tmpDir)
	})

	t.Run("repository without hook", func(t *testing.T) {
		env := newTestEnv()
		env.gh.addRepo("alice", "plain", map[string]string{"README.md": "# plain\n"})
		uc, set := env.build(t)

		result := gt.R1(uc.UpdateRepository(context.Background(), &model.UpdateRepoInput{
			Repo: model.GitHubRepo{Owner: "alice", Name: "plain"},
		})).NoError(t)
		gt.V(t, result.Status).Equal(model.RepoStatusSkipped)
		gt.V(t, len(set.git.CloneCalls())).Equal(0)
	})

	t.Run("missing updater", func(t *testing.T) {
		env := newTestEnv()
		env.gh.addRepo("alice", "app", map[string]string{
			model.PreCommitConfigFile: hookConfig("bob/cfg", "missing"),
		})
		uc, set := env.build(t)

		result := gt.R1(uc.UpdateRepository(context.Background(), &model.UpdateRepoInput{
			Repo: model.GitHubRepo{Owner: "alice", Name: "app"},
		})).NoError(t)
		gt.V(t, result.Status).Equal(model.RepoStatusFailed)
		gt.True(t, errors.Is(result.Err, types.ErrNotFound))
		gt.V(t, len(set.git.CloneCalls())).Equal(0)
	})

	t.Run("dry run", func(t *testing.T) {
		env := newTestEnv()
		uc, set := env.build(t)

		result := gt.R1(uc.UpdateRepository(context.Background(), &model.UpdateRepoInput{
			Repo:   model.GitHubRepo{Owner: "alice", Name: "proj"},
			DryRun: true,
		})).NoError(t)
		gt.V(t, result.Status).Equal(model.RepoStatusDryRun)
		gt.V(t, len(set.gh.CreatePullRequestCalls())).Equal(0)
	})

	t.Run("invalid input", func(t *testing.T) {
		env := newTestEnv()
		uc, _ := env.build(t)

		_, err := uc.UpdateRepository(context.Background(), &model.UpdateRepoInput{})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestDiscoverOwners(t *testing.T) {
	env := newTestEnv()
	env.gh.addRepo("dave", "app", map[string]string{
		model.PreCommitConfigFile: hookConfig("bob/cfg", "missing"),
	})
	uc, set := env.build(t)

	hooks := gt.R1(uc.DiscoverOwners(context.Background(), &model.UpdateOwnersInput{
		Owners: []string{"ghost", "alice", "dave"},
	})).NoError(t)

	gt.V(t, len(hooks)).Equal(2)
	gt.V(t, hooks[0].Repo.FullName()).Equal("alice/proj")
	gt.V(t, *hooks[0].UpdaterContent).Equal(lintUpdater)
	gt.V(t, hooks[1].Repo.FullName()).Equal("dave/app")
	gt.True(t, hooks[1].UpdaterContent == nil)

	gt.V(t, len(set.git.CloneCalls())).Equal(0)
	gt.V(t, len(set.preCommit.RunCalls())).Equal(0)
}

func TestUpdateRepository_ConcurrentPushes(t *testing.T) {
	env := newTestEnv()
	uc, set := env.build(t)

	var mutex sync.Mutex
	var opened []*model.PullRequestSummary
	set.gh.ListPullRequestsFunc = func(ctx context.Context, repo *model.GitHubRepo) ([]*model.PullRequestSummary, error) {
		mutex.Lock()
		prs := append([]*model.PullRequestSummary{}, opened...)
		mutex.Unlock()
		// leave room for the other update to list pull requests before this one creates
		time.Sleep(50 * time.Millisecond)
		return prs, nil
	}
	set.gh.CreatePullRequestFunc = func(ctx context.Context, input *model.CreatePullRequestInput) (*model.CreatedPullRequest, error) {
		mutex.Lock()
		defer mutex.Unlock()
		opened = append(opened, &model.PullRequestSummary{
			Number:  len(opened) + 1,
			HeadRef: input.Head,
			Body:    input.Body,
		})
		return &model.CreatedPullRequest{URL: "https://github.com/alice/proj/pull/1"}, nil
	}

	start := make(chan struct{})
	statuses := make(chan model.RepoStatus, 2)
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			result, err := uc.UpdateRepository(context.Background(), &model.UpdateRepoInput{
				Repo: model.GitHubRepo{Owner: "alice", Name: "proj"},
			})
			if err != nil {
				t.Error(err)
				return
			}
			statuses <- result.Status
		}()
	}
	close(start)
	wg.Wait()
	close(statuses)

	got := map[model.RepoStatus]int{}
	for status := range statuses {
		got[status]++
	}
	gt.V(t, got).Equal(map[model.RepoStatus]int{
		model.RepoStatusCreated:   1,
		model.RepoStatusDuplicate: 1,
	})
	gt.V(t, len(set.gh.CreatePullRequestCalls())).Equal(1)
}
