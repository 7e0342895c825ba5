package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/interfaces"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL     = "https://github.com"
	defaultAuthorName  = "repo-stream"
	defaultAuthorEmail = "repo-stream@users.noreply.github.com"

	// Username for HTTPS basic auth when only an access token is available.
	tokenUsername = "x-access-token"
)

// Client clones GitHub repositories with go-git.
type Client struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	username    string
	authorName  string
	authorEmail string
}

var _ interfaces.Git = (*Client)(nil)

type Option func(*Client)

// WithBaseURL sets the URL that owner/name is appended to when building the remote URL.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTokenSource enables HTTPS basic auth for clone and push. If username is empty,
// "x-access-token" is used.
func WithTokenSource(ts oauth2.TokenSource, username string) Option {
	return func(x *Client) {
		x.tokenSource = ts
		x.username = username
	}
}

func WithAuthor(name, email string) Option {
	return func(x *Client) {
		if name != "" {
			x.authorName = name
		}
		if email != "" {
			x.authorEmail = email
		}
	}
}

func New(options ...Option) *Client {
	client := &Client{
		baseURL:     defaultBaseURL,
		authorName:  defaultAuthorName,
		authorEmail: defaultAuthorEmail,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) remoteURL(repo *model.GitHubRepo) string {
	return fmt.Sprintf("%s/%s/%s", x.baseURL, repo.Owner, repo.Name)
}

func (x *Client) auth() (*githttp.BasicAuth, error) {
	if x.tokenSource == nil {
		return nil, nil
	}

	token, err := x.tokenSource.Token()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get token for git")
	}

	username := x.username
	if username == "" {
		username = tokenUsername
	}
	return &githttp.BasicAuth{
		Username: username,
		Password: token.AccessToken,
	}, nil
}

// Clone clones the default branch of repo into dir. History is fetched in full because a
// push walks the parents of the new commit.
func (x *Client) Clone(ctx context.Context, repo *model.GitHubRepo, dir string) (interfaces.Worktree, error) {
	auth, err := x.auth()
	if err != nil {
		return nil, err
	}

	url := x.remoteURL(repo)
	logging.From(ctx).Debug("Cloning repository", slog.String("url", url), slog.String("dir", dir))

	opt := &git.CloneOptions{
		URL:          url,
		SingleBranch: true,
	}
	if auth != nil {
		opt.Auth = auth
	}

	r, err := git.PlainCloneContext(ctx, dir, false, opt)
	if err != nil {
		return nil, goerr.Wrap(types.ErrProcessFailure, "failed to clone repository",
			goerr.V("repo", repo.FullName()),
			goerr.V("error", err.Error()),
		)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get worktree", goerr.V("repo", repo.FullName()))
	}

	return &worktree{
		client: x,
		repo:   r,
		wt:     wt,
		dir:    dir,
	}, nil
}

type worktree struct {
	client *Client
	repo   *git.Repository
	wt     *git.Worktree
	dir    string
}

func (x *worktree) Dir() string {
	return x.dir
}

// CreateBranch creates a branch at HEAD and checks it out.
func (x *worktree) CreateBranch(name string) error {
	if err := x.wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	}); err != nil {
		return goerr.Wrap(types.ErrProcessFailure, "failed to create branch",
			goerr.V("branch", name),
			goerr.V("error", err.Error()),
		)
	}
	return nil
}

// HasChanges reports whether tracked or untracked files differ from HEAD.
func (x *worktree) HasChanges() (bool, error) {
	status, err := x.wt.Status()
	if err != nil {
		return false, goerr.Wrap(types.ErrProcessFailure, "failed to get worktree status", goerr.V("error", err.Error()))
	}
	return !status.IsClean(), nil
}

// CommitAll stages every change, including deletions and untracked files, and commits it.
func (x *worktree) CommitAll(message string) error {
	if err := x.wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return goerr.Wrap(types.ErrProcessFailure, "failed to stage changes", goerr.V("error", err.Error()))
	}

	if _, err := x.wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  x.client.authorName,
			Email: x.client.authorEmail,
			When:  time.Now(),
		},
	}); err != nil {
		return goerr.Wrap(types.ErrProcessFailure, "failed to commit", goerr.V("error", err.Error()))
	}

	return nil
}

// Push pushes branch to origin under the same name.
func (x *worktree) Push(ctx context.Context, branch string) error {
	auth, err := x.client.auth()
	if err != nil {
		return err
	}

	ref := plumbing.NewBranchReferenceName(branch)
	opt := &git.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []gitconfig.RefSpec{gitconfig.RefSpec(ref.String() + ":" + ref.String())},
	}
	if auth != nil {
		opt.Auth = auth
	}

	if err := x.repo.PushContext(ctx, opt); err != nil {
		if errors.Is(err, git.NoErrAlreadyUpToDate) {
			logging.From(ctx).Info("Branch already up to date", slog.String("branch", branch))
			return nil
		}
		return goerr.Wrap(types.ErrProcessFailure, "failed to push branch",
			goerr.V("branch", branch),
			goerr.V("error", err.Error()),
		)
	}

	return nil
}
