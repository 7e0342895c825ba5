package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repostream/pkg/cli/config"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/infra"
	"github.com/m-mizutani/repostream/pkg/usecase"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func discoverCommand() *cli.Command {
	var (
		includeForks bool
		excludeFile  string

		github config.GitHub
	)

	discoverFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "include-forks",
			Usage:       "Process forked repositories as well",
			Sources:     cli.EnvVars("REPOSTREAM_INCLUDE_FORKS"),
			Destination: &includeForks,
		},
		&cli.StringFlag{
			Name:        "exclude-file",
			Usage:       "File of repository full names to skip, one per line",
			Sources:     cli.EnvVars("REPOSTREAM_EXCLUDE_FILE"),
			Destination: &excludeFile,
		},
	}

	return &cli.Command{
		Name:      "discover",
		Usage:     "List repositories of owners that declare the repo-stream hook, without cloning them",
		ArgsUsage: "[owner...]",
		Flags: slice.Flatten(
			discoverFlags,
			github.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting discover",
				slog.Bool("IncludeForks", includeForks),
				slog.String("ExcludeFile", excludeFile),
				slog.Any("GitHub", github),
			)

			owners, err := resolveOwners(c.Args().Slice(), ".")
			if err != nil {
				return err
			}

			excludes, err := loadExcludeFile(excludeFile)
			if err != nil {
				return err
			}

			ghClient, err := github.NewClient(ctx)
			if err != nil {
				return err
			}
			uc := usecase.New(infra.New(infra.WithGitHub(ghClient)))

			records, err := uc.DiscoverOwners(ctx, &model.UpdateOwnersInput{
				Owners:       owners,
				IncludeForks: includeForks,
				ExcludeRepos: excludes,
			})
			if err != nil {
				return err
			}

			printHookRecords(c.Root().Writer, records)
			return nil
		},
	}
}
