package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repostream/pkg/domain/interfaces"
	"github.com/m-mizutani/repostream/pkg/domain/mock"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/usecase"
)

const hookConfigTemplate = `repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.4.0
    hooks:
      - id: end-of-file-fixer
  - repo: https://github.com/mondeja/repo-stream
    rev: v1.3.1
    hooks:
      - id: repo-stream
        args:
          - --config=https://github.com/%CONFIG%
          - --updater
          - %UPDATER%
`

func hookConfig(config, updater string) string {
	return strings.NewReplacer("%CONFIG%", config, "%UPDATER%", updater).Replace(hookConfigTemplate)
}

// githubFixture is an in-memory GitHub.
type githubFixture struct {
	users    map[string][]*model.GitHubRepo
	branches map[string]string
	trees    map[string][]string
	// key: owner/name/branch/path
	files map[string]string
	prs   map[string][]*model.PullRequestSummary

	// returned by every call when set
	transportErr error
}

func newGitHubFixture() *githubFixture {
	return &githubFixture{
		users:    map[string][]*model.GitHubRepo{},
		branches: map[string]string{},
		trees:    map[string][]string{},
		files:    map[string]string{},
		prs:      map[string][]*model.PullRequestSummary{},
	}
}

// addRepo registers owner/name with default branch "main" and the given files.
func (f *githubFixture) addRepo(owner, name string, files map[string]string) {
	repo := &model.GitHubRepo{Owner: owner, Name: name}
	f.users[owner] = append(f.users[owner], repo)
	f.addConfigRepo(owner, name, files)
}

// addConfigRepo registers a repository that is not listed under its owner.
func (f *githubFixture) addConfigRepo(owner, name string, files map[string]string) {
	full := owner + "/" + name
	f.branches[full] = "main"
	for path, content := range files {
		f.trees[full] = append(f.trees[full], path)
		f.files[full+"/main/"+path] = content
	}
}

func (f *githubFixture) notFound(msg string) error {
	return goerr.Wrap(types.ErrNotFound, msg)
}

func (f *githubFixture) mock() *mock.GitHubMock {
	return &mock.GitHubMock{
		ListUserRepositoriesFunc: func(ctx context.Context, user string, includeForks bool) ([]*model.GitHubRepo, error) {
			if f.transportErr != nil {
				return nil, f.transportErr
			}
			repos, ok := f.users[user]
			if !ok {
				return nil, f.notFound("user not found")
			}
			return repos, nil
		},
		GetDefaultBranchFunc: func(ctx context.Context, repo *model.GitHubRepo) (string, error) {
			if f.transportErr != nil {
				return "", f.transportErr
			}
			branch, ok := f.branches[repo.FullName()]
			if !ok {
				return "", f.notFound("repository not found")
			}
			return branch, nil
		},
		ListTreeFunc: func(ctx context.Context, repo *model.GitHubRepo, branch string) ([]string, error) {
			return f.trees[repo.FullName()], nil
		},
		GetFileContentFunc: func(ctx context.Context, repo *model.GitHubRepo, branch, path string) ([]byte, error) {
			content, ok := f.files[repo.FullName()+"/"+branch+"/"+path]
			if !ok {
				return nil, f.notFound("file not found")
			}
			return []byte(content), nil
		},
		ListPullRequestsFunc: func(ctx context.Context, repo *model.GitHubRepo) ([]*model.PullRequestSummary, error) {
			return f.prs[repo.FullName()], nil
		},
		CreatePullRequestFunc: func(ctx context.Context, input *model.CreatePullRequestInput) (*model.CreatedPullRequest, error) {
			return &model.CreatedPullRequest{
				URL:    "https://github.com/" + input.Repo.FullName() + "/pull/1",
				Author: "repostream-bot",
			}, nil
		},
	}
}

// fakeGit clones by creating an empty directory. Every worktree reports changes according to
// changed after the tool has run.
type fakeGit struct {
	mutex     sync.Mutex
	changed   map[string]bool
	cloneErr  map[string]error
	worktrees map[string]*mock.WorktreeMock
}

func newFakeGit() *fakeGit {
	return &fakeGit{
		changed:   map[string]bool{},
		cloneErr:  map[string]error{},
		worktrees: map[string]*mock.WorktreeMock{},
	}
}

func (g *fakeGit) mock(t *testing.T) *mock.GitMock {
	return &mock.GitMock{
		CloneFunc: func(ctx context.Context, repo *model.GitHubRepo, dir string) (interfaces.Worktree, error) {
			if err := g.cloneErr[repo.FullName()]; err != nil {
				return nil, err
			}
			gt.NoError(t, os.MkdirAll(dir, 0o755))

			changed := g.changed[repo.FullName()]
			wt := &mock.WorktreeMock{
				DirFunc:          func() string { return dir },
				CreateBranchFunc: func(name string) error { return nil },
				HasChangesFunc:   func() (bool, error) { return changed, nil },
				CommitAllFunc:    func(message string) error { return nil },
				PushFunc:         func(ctx context.Context, branch string) error { return nil },
			}

			g.mutex.Lock()
			g.worktrees[repo.FullName()] = wt
			g.mutex.Unlock()
			return wt, nil
		},
	}
}

// preCommitRecorder records the content of the config file passed with -c.
type preCommitRecorder struct {
	configs []string
	dirs    []string
	code    int
	err     error
}

func (p *preCommitRecorder) mock(t *testing.T) *mock.PreCommitMock {
	return &mock.PreCommitMock{
		RunFunc: func(ctx context.Context, dir string, args []string) (int, error) {
			if p.err != nil {
				return -1, p.err
			}
			gt.V(t, args[:3]).Equal([]string{"run", "--all-files", "-c"})
			cfgPath := args[3]
			gt.False(t, strings.HasPrefix(cfgPath, dir+string(filepath.Separator)))
			gt.V(t, filepath.Base(cfgPath)).Equal(usecase.LocalConfigFileForTest)

			data := gt.R1(os.ReadFile(cfgPath)).NoError(t)
			p.configs = append(p.configs, string(data))
			p.dirs = append(p.dirs, dir)
			return p.code, nil
		},
	}
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries := gt.R1(os.ReadDir(dir)).NoError(t)
	gt.V(t, len(entries)).Equal(0)
}

type mockSet struct {
	gh        *mock.GitHubMock
	git       *mock.GitMock
	preCommit *mock.PreCommitMock
}
