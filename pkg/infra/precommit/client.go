package precommit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/interfaces"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
)

const DefaultTimeout = 10 * time.Minute

type Client struct {
	path    string
	timeout time.Duration
}

var _ interfaces.PreCommit = (*Client)(nil)

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.timeout = d
	}
}

func New(path string, options ...Option) *Client {
	client := &Client{
		path:    path,
		timeout: DefaultTimeout,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// Run executes the tool in dir and returns its exit code. The error is set only when the
// process could not be started or did not finish within the timeout.
func (x *Client) Run(ctx context.Context, dir string, args []string) (int, error) {
	if x.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.timeout)
		defer cancel()
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, x.path, args...)
	cmd.Dir = dir
	cmd.Stdout = &out
	cmd.Stderr = &out

	logger := logging.From(ctx).With(slog.String("path", x.path), slog.Any("args", args), slog.String("dir", dir))
	logger.Debug("Running pre-commit")

	err := cmd.Run()
	if ctx.Err() != nil {
		return -1, goerr.Wrap(types.ErrProcessFailure, "pre-commit did not finish",
			goerr.V("args", args),
			goerr.V("timeout", x.timeout.String()),
			goerr.V("output", out.String()),
		)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Info("pre-commit exited with non-zero code",
			slog.Int("code", exitErr.ExitCode()),
			slog.String("output", out.String()),
		)
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, goerr.Wrap(types.ErrProcessFailure, "failed to execute pre-commit",
			goerr.V("path", x.path),
			goerr.V("error", err.Error()),
		)
	}

	logger.Debug("pre-commit finished", slog.String("output", out.String()))
	return 0, nil
}
