package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/repostream/pkg/infra/precommit"
	"github.com/urfave/cli/v3"
)

type PreCommit struct {
	path    string
	timeout time.Duration
}

func (x *PreCommit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "pre-commit-path",
			Usage:       "Path to pre-commit binary",
			Category:    "pre-commit",
			Value:       "pre-commit",
			Destination: &x.path,
			Sources:     cli.EnvVars("REPOSTREAM_PRE_COMMIT_PATH"),
		},
		&cli.DurationFlag{
			Name:        "tool-timeout",
			Usage:       "Timeout of one pre-commit run",
			Category:    "pre-commit",
			Value:       precommit.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("REPOSTREAM_TOOL_TIMEOUT"),
		},
	}
}

func (x *PreCommit) New() *precommit.Client {
	return precommit.New(x.path, precommit.WithTimeout(x.timeout))
}

func (x PreCommit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Path", x.path),
		slog.Duration("Timeout", x.timeout),
	)
}
