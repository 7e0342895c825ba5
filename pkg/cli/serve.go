package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repostream/pkg/cli/config"
	"github.com/m-mizutani/repostream/pkg/controller/server"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"github.com/m-mizutani/repostream/pkg/usecase"
	"github.com/m-mizutani/repostream/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr            string
		branchPrefix    string
		dryRun          bool
		queueSize       int
		shutdownTimeout time.Duration

		github    config.GitHub
		git       config.Git
		preCommit config.PreCommit
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("REPOSTREAM_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "branch-prefix",
			Usage:       "Prefix of branches created for pull requests",
			Value:       usecase.DefaultBranchPrefix,
			Sources:     cli.EnvVars("REPOSTREAM_BRANCH_PREFIX"),
			Destination: &branchPrefix,
		},
		&cli.IntFlag{
			Name:        "queue-size",
			Usage:       "Number of webhook-triggered updates that may wait",
			Value:       64,
			Sources:     cli.EnvVars("REPOSTREAM_QUEUE_SIZE"),
			Destination: &queueSize,
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "How long to wait for running updates on shutdown",
			Value:       5 * time.Minute,
			Sources:     cli.EnvVars("REPOSTREAM_SHUTDOWN_TIMEOUT"),
			Destination: &shutdownTimeout,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Aliases:     []string{"d"},
			Usage:       "Commit updates locally but neither push nor open pull requests",
			Sources:     cli.EnvVars("REPOSTREAM_DRY_RUN"),
			Destination: &dryRun,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode, updating a repository when its default branch is pushed",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			git.Flags(),
			preCommit.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.String("BranchPrefix", branchPrefix),
				slog.Bool("DryRun", dryRun),
				slog.Int("QueueSize", queueSize),
				slog.Duration("ShutdownTimeout", shutdownTimeout),
				slog.Any("GitHub", github),
				slog.Any("Git", git),
				slog.Any("PreCommit", preCommit),
				slog.Any("Sentry", sentry),
			)

			if queueSize < 1 {
				return goerr.Wrap(types.ErrInvalidOption, "--queue-size must be positive")
			}
			if github.Secret() == "" {
				return goerr.Wrap(types.ErrInvalidOption, "--github-app-secret is required to verify webhook payloads")
			}

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, err := newUseCase(ctx, &github, &git, &preCommit, branchPrefix)
			if err != nil {
				return err
			}

			s := server.New(uc,
				server.WithGitHubSecret(github.Secret()),
				server.WithDryRun(dryRun),
				server.WithQueueSize(queueSize),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if shutdownErr := s.Shutdown(ctx); shutdownErr != nil {
					logging.Default().Warn("failed to wait for updates", "error", shutdownErr)
				}
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}

				logging.Default().Info("waiting for running updates")
				if err := s.Shutdown(ctx); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
