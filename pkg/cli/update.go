package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repostream/pkg/cli/config"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/usecase"
	"github.com/m-mizutani/repostream/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// resolveOwners falls back to the owner of the origin remote of dir when no owner is given.
func resolveOwners(args []string, dir string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	repo, err := detectGitHubRepo(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "no owner is given and it can not be detected from git remote")
	}
	return []string{repo.Owner}, nil
}

func updateCommand() *cli.Command {
	var (
		dryRun       bool
		includeForks bool
		excludeFile  string
		branchPrefix string
		repos        []string

		github    config.GitHub
		git       config.Git
		preCommit config.PreCommit
		sentry    config.Sentry
	)

	updateFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "dry-run",
			Aliases:     []string{"d"},
			Usage:       "Commit updates locally but neither push nor open pull requests",
			Sources:     cli.EnvVars("REPOSTREAM_DRY_RUN"),
			Destination: &dryRun,
		},
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
		&cli.StringFlag{
			Name:        "branch-prefix",
			Usage:       "Prefix of branches created for pull requests",
			Value:       usecase.DefaultBranchPrefix,
			Sources:     cli.EnvVars("REPOSTREAM_BRANCH_PREFIX"),
			Destination: &branchPrefix,
		},
		&cli.StringSliceFlag{
			Name:        "repo",
			Aliases:     []string{"r"},
			Usage:       "Update only the given repository (owner/name) instead of all repositories of owners",
			Destination: &repos,
		},
	}

	return &cli.Command{
		Name:      "update",
		Aliases:   []string{"u"},
		Usage:     "Open pull requests for repositories of owners that declare the repo-stream hook",
		ArgsUsage: "[owner...]",
		Flags: slice.Flatten(
			updateFlags,
			github.Flags(),
			git.Flags(),
			preCommit.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting update",
				slog.Bool("DryRun", dryRun),
				slog.Bool("IncludeForks", includeForks),
				slog.String("ExcludeFile", excludeFile),
				slog.String("BranchPrefix", branchPrefix),
				slog.Any("Repos", repos),
				slog.Any("GitHub", github),
				slog.Any("Git", git),
				slog.Any("PreCommit", preCommit),
				slog.Any("Sentry", sentry),
			)

			if len(repos) > 0 && c.Args().Len() > 0 {
				return goerr.Wrap(types.ErrInvalidOption, "owners and --repo can not be used together")
			}

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush()

			uc, err := newUseCase(ctx, &github, &git, &preCommit, branchPrefix)
			if err != nil {
				return err
			}

			if len(repos) > 0 {
				return updateRepositories(ctx, c, uc, repos, dryRun)
			}

			owners, err := resolveOwners(c.Args().Slice(), ".")
			if err != nil {
				return err
			}

			excludes, err := loadExcludeFile(excludeFile)
			if err != nil {
				return err
			}

			result, err := uc.UpdateOwners(ctx, &model.UpdateOwnersInput{
				Owners:       owners,
				DryRun:       dryRun,
				IncludeForks: includeForks,
				ExcludeRepos: excludes,
			})
			if result != nil {
				printRunSummary(c.Root().Writer, result)
			}
			if err != nil {
				return err
			}

			if result.ExitCode() != 0 {
				return goerr.New("update failed for some owners", goerr.V("owners", result.FailedOwners()))
			}
			return nil
		},
	}
}

func updateRepositories(ctx context.Context, c *cli.Command, uc *usecase.UseCase, repos []string, dryRun bool) error {
	var failed []string
	for _, name := range repos {
		repo, err := model.ParseGitHubRepo(name)
		if err != nil {
			return err
		}

		result, err := uc.UpdateRepository(ctx, &model.UpdateRepoInput{Repo: *repo, DryRun: dryRun})
		if err != nil {
			return err
		}
		printRepoResult(c.Root().Writer, result)

		if result.Status == model.RepoStatusFailed {
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		return goerr.New("update failed for some repositories", goerr.V("repos", failed))
	}
	return nil
}
