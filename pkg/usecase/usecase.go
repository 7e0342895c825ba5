package usecase

import (
	"sync"

	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/infra"
)

const DefaultBranchPrefix = "repo-stream/"

type UseCase struct {
	clients      *infra.Clients
	branchPrefix string
	tmpDir       string

	// key: owner/name, value: *sync.Mutex
	repoLocks sync.Map
}

type Option func(*UseCase)

// WithBranchPrefix sets the prefix of branches created for pull requests. It is also the
// prefix used to find existing pull requests.
func WithBranchPrefix(prefix string) Option {
	return func(x *UseCase) {
		x.branchPrefix = prefix
	}
}

// WithTempDir sets the parent directory of ephemeral clones. Default is os.TempDir().
func WithTempDir(dir string) Option {
	return func(x *UseCase) {
		x.tmpDir = dir
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:      clients,
		branchPrefix: DefaultBranchPrefix,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

// lockRepository serializes updates of the same repository. The duplicate check and the pull
// request creation of one update must not interleave with another update.
func (x *UseCase) lockRepository(repo *model.GitHubRepo) func() {
	v, _ := x.repoLocks.LoadOrStore(repo.FullName(), &sync.Mutex{})
	mutex := v.(*sync.Mutex)
	mutex.Lock()
	return mutex.Unlock
}
