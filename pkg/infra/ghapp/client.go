package ghapp

import (
	"context"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"golang.org/x/oauth2"
)

// Client issues installation tokens of a GitHub App. The same installation is used both for
// REST API calls and for git push over HTTPS.
type Client struct {
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey
}

func New(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	return &Client{
		appID:     appID,
		installID: installID,
		pem:       pem,
	}, nil
}

func (x *Client) transport(base http.RoundTripper) (*ghinstallation.Transport, error) {
	if base == nil {
		base = http.DefaultTransport
	}
	itr, err := ghinstallation.New(base, int64(x.appID), int64(x.installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github app transport",
			goerr.V("appID", x.appID),
			goerr.V("installID", x.installID),
		)
	}
	return itr, nil
}

// HTTPClient returns a client authenticated as the installation.
func (x *Client) HTTPClient(base http.RoundTripper) (*http.Client, error) {
	itr, err := x.transport(base)
	if err != nil {
		return nil, err
	}
	return &http.Client{Transport: itr}, nil
}

// TokenSource returns installation tokens for git over HTTPS.
func (x *Client) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	itr, err := x.transport(nil)
	if err != nil {
		return nil, err
	}
	return &tokenSource{ctx: ctx, itr: itr}, nil
}

type tokenSource struct {
	ctx context.Context
	itr *ghinstallation.Transport
}

func (x *tokenSource) Token() (*oauth2.Token, error) {
	token, err := x.itr.Token(x.ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get installation token")
	}
	return &oauth2.Token{AccessToken: token, TokenType: "token"}, nil
}
