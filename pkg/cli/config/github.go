package config

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/infra/ghapp"
	"github.com/m-mizutani/repostream/pkg/infra/githubapi"
	"github.com/m-mizutani/repostream/pkg/infra/gitrepo"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// GitHub holds credentials for both the REST API and git over HTTPS. A personal token is used
// only when both token and username are set. GitHub App credentials take precedence.
type GitHub struct {
	token    types.GitHubToken `masq:"secret"`
	username string

	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	secret     types.GitHubAppSecret     `masq:"secret"`

	apiURL  string
	timeout time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPOSTREAM_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-username",
			Usage:       "GitHub username paired with the token",
			Category:    "GitHub",
			Destination: &x.username,
			Sources:     cli.EnvVars("REPOSTREAM_GITHUB_USERNAME", "GITHUB_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("REPOSTREAM_GITHUB_API_URL"),
		},
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout of each GitHub API request",
			Category:    "GitHub",
			Value:       30 * time.Second,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("REPOSTREAM_HTTP_TIMEOUT"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("REPOSTREAM_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("REPOSTREAM_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("REPOSTREAM_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-app-secret",
			Usage:       "GitHub App Webhook Secret",
			Category:    "GitHub App",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("REPOSTREAM_GITHUB_APP_SECRET"),
		},
	}
}

func (x *GitHub) useApp() bool {
	return x.appID != 0 || x.installID != 0 || x.privateKey != ""
}

func (x *GitHub) useToken() bool {
	return x.token != "" && x.username != ""
}

func (x *GitHub) app() (*ghapp.Client, error) {
	client, err := ghapp.New(x.appID, x.installID, x.privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "GitHub App is partially configured")
	}
	return client, nil
}

// HTTPClient returns a client for the REST API. Without credentials the client is
// unauthenticated and subject to the anonymous rate limit.
func (x *GitHub) HTTPClient(ctx context.Context) (*http.Client, error) {
	var client *http.Client
	switch {
	case x.useApp():
		app, err := x.app()
		if err != nil {
			return nil, err
		}
		if client, err = app.HTTPClient(nil); err != nil {
			return nil, err
		}

	case x.useToken():
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(x.token)})
		client = oauth2.NewClient(ctx, src)

	default:
		logging.From(ctx).Warn("GitHub credentials are not configured, using unauthenticated access")
		client = &http.Client{}
	}

	client.Timeout = x.timeout
	return client, nil
}

// TokenSource returns nil when neither a token nor a GitHub App is configured.
func (x *GitHub) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	switch {
	case x.useApp():
		app, err := x.app()
		if err != nil {
			return nil, err
		}
		return app.TokenSource(ctx)

	case x.useToken():
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(x.token)}), nil

	default:
		return nil, nil
	}
}

func (x *GitHub) NewClient(ctx context.Context) (*githubapi.Client, error) {
	httpClient, err := x.HTTPClient(ctx)
	if err != nil {
		return nil, err
	}

	var options []githubapi.Option
	if x.apiURL != "" {
		options = append(options, githubapi.WithBaseURL(x.apiURL))
	}
	return githubapi.New(httpClient, options...)
}

// GitOptions configures clone and push with the same credentials as the API client.
func (x *GitHub) GitOptions(ctx context.Context) ([]gitrepo.Option, error) {
	ts, err := x.TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, nil
	}

	username := x.username
	if x.useApp() {
		username = ""
	}
	return []gitrepo.Option{gitrepo.WithTokenSource(ts, username)}, nil
}

func (x *GitHub) Secret() types.GitHubAppSecret {
	return x.secret
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Username", x.username),
		slog.Int("Token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("Secret.len", len(x.secret)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("APIURL", x.apiURL),
		slog.Duration("Timeout", x.timeout),
	)
}
