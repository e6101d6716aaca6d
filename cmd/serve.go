package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the catalog server",
	Long:  `start the catalog server and the periodic full sync`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logger.WithCtx(ctx, log)

		cfg, err := loadConfig()
		if err != nil {
			log.Fatalw("failed to read configurations", zap.Error(err))
		}

		m, closeStore, err := newManager(ctx)
		if err != nil {
			log.Fatalw("failed to create manager", zap.Error(err))
		}
		defer closeStore()

		s := server.New(log, m)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return s.Serve(gctx, cfg.Server.Port)
		})
		g.Go(func() error {
			return m.RunScheduler(gctx, cfg.Manager.Jobs.FullSync)
		})

		if err := g.Wait(); err != nil {
			log.Errorw("server stopped", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
