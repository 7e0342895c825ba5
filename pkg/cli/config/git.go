package config

import (
	"log/slog"

	"github.com/m-mizutani/repostream/pkg/infra/gitrepo"
	"github.com/urfave/cli/v3"
)

type Git struct {
	authorName  string
	authorEmail string
}

func (x *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "git-author-name",
			Usage:       "Author name of update commits",
			Category:    "Git",
			Destination: &x.authorName,
			Sources:     cli.EnvVars("REPOSTREAM_GIT_AUTHOR_NAME"),
		},
		&cli.StringFlag{
			Name:        "git-author-email",
			Usage:       "Author email of update commits",
			Category:    "Git",
			Destination: &x.authorEmail,
			Sources:     cli.EnvVars("REPOSTREAM_GIT_AUTHOR_EMAIL"),
		},
	}
}

func (x *Git) Options() []gitrepo.Option {
	return []gitrepo.Option{gitrepo.WithAuthor(x.authorName, x.authorEmail)}
}

func (x Git) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("AuthorName", x.authorName),
		slog.String("AuthorEmail", x.authorEmail),
	)
}
