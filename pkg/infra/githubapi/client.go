package githubapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/interfaces"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
	"github.com/m-mizutani/repostream/pkg/utils/safe"
)

const perPage = 100

type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL string
}

type Option func(*config)

// WithBaseURL replaces https://api.github.com/ as API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// New creates a GitHub API client. Authentication is done by httpClient.
func New(httpClient *http.Client, options ...Option) (*Client, error) {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	client := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		if !strings.HasSuffix(cfg.baseURL, "/") {
			cfg.baseURL += "/"
		}
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", cfg.baseURL))
		}
		client.BaseURL = u
	}

	return &Client{client: client}, nil
}

func isNotFound(resp *github.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}

func (x *Client) ListUserRepositories(ctx context.Context, user string, includeForks bool) ([]*model.GitHubRepo, error) {
	var results []*model.GitHubRepo

	for page := 1; ; page++ {
		opt := &github.RepositoryListByUserOptions{
			Type: "owner",
			Sort: "updated",
			ListOptions: github.ListOptions{
				Page:    page,
				PerPage: perPage,
			},
		}

		repos, resp, err := x.client.Repositories.ListByUser(ctx, user, opt)
		if err != nil {
			if isNotFound(resp) {
				return nil, goerr.Wrap(types.ErrNotFound, "user not found", goerr.V("user", user))
			}
			return nil, goerr.Wrap(err, "failed to list user repositories", goerr.V("user", user), goerr.V("page", page))
		}

		for _, repo := range repos {
			if repo.GetFork() && !includeForks {
				continue
			}
			results = append(results, &model.GitHubRepo{
				Owner: repo.GetOwner().GetLogin(),
				Name:  repo.GetName(),
			})
		}

		if len(repos) < perPage {
			break
		}
	}

	logging.From(ctx).Debug("Listed user repositories",
		slog.String("user", user),
		slog.Int("count", len(results)),
		slog.Bool("include_forks", includeForks),
	)

	return results, nil
}

func (x *Client) GetDefaultBranch(ctx context.Context, repo *model.GitHubRepo) (string, error) {
	r, resp, err := x.client.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		if isNotFound(resp) {
			return "", goerr.Wrap(types.ErrNotFound, "repository not found", goerr.V("repo", repo.FullName()))
		}
		return "", goerr.Wrap(err, "failed to get repository", goerr.V("repo", repo.FullName()))
	}

	return r.GetDefaultBranch(), nil
}

func (x *Client) ListTree(ctx context.Context, repo *model.GitHubRepo, branch string) ([]string, error) {
	tree, resp, err := x.client.Git.GetTree(ctx, repo.Owner, repo.Name, branch, false)
	if err != nil {
		if isNotFound(resp) {
			return nil, goerr.Wrap(types.ErrNotFound, "tree not found",
				goerr.V("repo", repo.FullName()),
				goerr.V("branch", branch),
			)
		}
		return nil, goerr.Wrap(err, "failed to get tree",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", branch),
		)
	}

	paths := make([]string, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		paths = append(paths, entry.GetPath())
	}
	return paths, nil
}

func (x *Client) GetFileContent(ctx context.Context, repo *model.GitHubRepo, branch, path string) ([]byte, error) {
	opt := &github.RepositoryContentGetOptions{Ref: branch}
	file, _, resp, err := x.client.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, opt)
	if err != nil {
		if isNotFound(resp) {
			return nil, goerr.Wrap(types.ErrNotFound, "file not found",
				goerr.V("repo", repo.FullName()),
				goerr.V("branch", branch),
				goerr.V("path", path),
			)
		}
		return nil, goerr.Wrap(err, "failed to get file content",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", branch),
			goerr.V("path", path),
		)
	}
	if file == nil {
		return nil, goerr.Wrap(types.ErrNotFound, "path is not a file",
			goerr.V("repo", repo.FullName()),
			goerr.V("path", path),
		)
	}

	// Files larger than 1MB come without inline content
	if file.GetEncoding() == "none" {
		return x.downloadFile(ctx, repo, file)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, goerr.Wrap(types.ErrParseFailure, "failed to decode file content",
			goerr.V("repo", repo.FullName()),
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}

	return []byte(content), nil
}

func (x *Client) downloadFile(ctx context.Context, repo *model.GitHubRepo, file *github.RepositoryContent) ([]byte, error) {
	if file.GetDownloadURL() == "" {
		return nil, goerr.Wrap(types.ErrParseFailure, "file has neither content nor download URL",
			goerr.V("repo", repo.FullName()),
			goerr.V("path", file.GetPath()),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.GetDownloadURL(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request", goerr.V("url", file.GetDownloadURL()))
	}

	resp, err := x.client.Client().Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download file", goerr.V("url", file.GetDownloadURL()))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.Wrap(types.ErrParseFailure, "unexpected status code of file download",
			goerr.V("repo", repo.FullName()),
			goerr.V("path", file.GetPath()),
			goerr.V("status", resp.StatusCode),
		)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read downloaded file", goerr.V("url", file.GetDownloadURL()))
	}

	logging.From(ctx).Debug("Downloaded large file",
		slog.String("repo", repo.FullName()),
		slog.String("path", file.GetPath()),
		slog.Int("size", len(data)),
	)
	return data, nil
}

func (x *Client) ListPullRequests(ctx context.Context, repo *model.GitHubRepo) ([]*model.PullRequestSummary, error) {
	var results []*model.PullRequestSummary
	opt := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		prs, resp, err := x.client.PullRequests.List(ctx, repo.Owner, repo.Name, opt)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull requests", goerr.V("repo", repo.FullName()))
		}

		for _, pr := range prs {
			results = append(results, &model.PullRequestSummary{
				Number:  pr.GetNumber(),
				HeadRef: pr.GetHead().GetRef(),
				Body:    pr.GetBody(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return results, nil
}

func (x *Client) CreatePullRequest(ctx context.Context, input *model.CreatePullRequestInput) (*model.CreatedPullRequest, error) {
	newPR := &github.NewPullRequest{
		Title: github.Ptr(input.Title),
		Head:  github.Ptr(input.Head),
		Base:  github.Ptr(input.Base),
		Body:  github.Ptr(input.Body),
	}

	pr, _, err := x.client.PullRequests.Create(ctx, input.Repo.Owner, input.Repo.Name, newPR)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create pull request",
			goerr.V("repo", input.Repo.FullName()),
			goerr.V("head", input.Head),
			goerr.V("base", input.Base),
		)
	}

	return &model.CreatedPullRequest{
		URL:    pr.GetHTMLURL(),
		Author: pr.GetUser().GetLogin(),
	}, nil
}
