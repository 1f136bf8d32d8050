package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/cli/config"
	httpctrl "github.com/secmon-lab/datedmemo/pkg/controller/http"
	"github.com/secmon-lab/datedmemo/pkg/usecase"
	"github.com/secmon-lab/datedmemo/pkg/utils/logging"
	"github.com/secmon-lab/datedmemo/pkg/utils/safe"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var addr string
	var accessLog bool
	var repoCfg config.Repository
	var calendarCfg config.Calendar

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("DATEDMEMO_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "access-log",
			Usage:       "Log every HTTP request",
			Value:       true,
			Sources:     cli.EnvVars("DATEDMEMO_ACCESS_LOG"),
			Destination: &accessLog,
		},
	}

	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, calendarCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			normalizer, err := calendarCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo, usecase.WithNormalizer(normalizer))

			httpHandler, err := httpctrl.New(uc.Memo, httpctrl.WithAccessLog(accessLog))
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"backend", repoCfg.Backend(),
					"timezone", normalizer.Location().String())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server", goerr.V("addr", addr))
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down HTTP server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				logging.Default().Info("Server shutdown completed")
				return nil
			})

			return eg.Wait()
		},
	}
}
