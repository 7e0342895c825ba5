package infra

import (
	"github.com/m-mizutani/repostream/pkg/domain/interfaces"
	"github.com/m-mizutani/repostream/pkg/infra/gitrepo"
	"github.com/m-mizutani/repostream/pkg/infra/precommit"
)

type Clients struct {
	github    interfaces.GitHub
	git       interfaces.Git
	preCommit interfaces.PreCommit
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		git:       gitrepo.New(),
		preCommit: precommit.New("pre-commit"),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Git() interfaces.Git {
	return x.git
}
func (x *Clients) PreCommit() interfaces.PreCommit {
	return x.preCommit
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithPreCommit(client interfaces.PreCommit) Option {
	return func(x *Clients) {
		x.preCommit = client
	}
}
