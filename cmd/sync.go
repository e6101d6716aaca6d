package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/manager"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runsLimit int

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "sync the catalog",
	Long:  `sync categories and titles from the provider and enrich them with TMDB metadata`,
}

// runSync runs fn in the foreground with a manager built from the configuration
func runSync(name string, fn func(ctx context.Context, m *manager.CatalogManager) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log := logger.Get().With(zap.String("command", name))
		ctx = logger.WithCtx(ctx, log)

		m, closeStore, err := newManager(ctx)
		if err != nil {
			log.Fatalw("failed to create manager", zap.Error(err))
		}
		defer closeStore()

		if err := fn(ctx, m); err != nil {
			closeStore()
			log.Fatalw("sync failed", zap.Error(err))
		}
	}
}

var syncCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "sync provider categories",
	Run: runSync("categories", func(ctx context.Context, m *manager.CatalogManager) error {
		n, err := m.SyncCategories(ctx)
		if err != nil {
			return err
		}
		logger.FromCtx(ctx).Infow("synced categories", zap.Int("count", n))
		return nil
	}),
}

var syncCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "sync titles added since the last successful run",
	Run: runSync("catalog", func(ctx context.Context, m *manager.CatalogManager) error {
		n, err := m.SyncCatalog(ctx)
		if err != nil {
			return err
		}
		logger.FromCtx(ctx).Infow("synced catalog", zap.Int("upserted", n))
		return nil
	}),
}

var syncEnrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "match every title against TMDB",
	Run: runSync("enrich", func(ctx context.Context, m *manager.CatalogManager) error {
		n, err := m.EnrichAll(ctx)
		if err != nil {
			return err
		}
		logger.FromCtx(ctx).Infow("enriched titles", zap.Int("matched", n))
		return nil
	}),
}

var syncFullCmd = &cobra.Command{
	Use:   "full",
	Short: "sync categories and the catalog, then enrich every title",
	Run: runSync("full", func(ctx context.Context, m *manager.CatalogManager) error {
		return m.Exclusive(ctx, func(ctx context.Context) error {
			stats := m.RunFullSync(ctx)

			b, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(b))

			if len(stats.Errors) > 0 {
				return fmt.Errorf("full sync finished with %d errors", len(stats.Errors))
			}
			return nil
		})
	}),
}

var syncAmbiguousCmd = &cobra.Command{
	Use:   "ambiguous",
	Short: "re-resolve titles that had several equally good matches",
	Run: runSync("ambiguous", func(ctx context.Context, m *manager.CatalogManager) error {
		return m.Exclusive(ctx, func(ctx context.Context) error {
			n, err := m.ReresolveAmbiguous(ctx)
			if err != nil {
				return err
			}
			logger.FromCtx(ctx).Infow("re-resolved ambiguous titles", zap.Int("resolved", n))
			return nil
		})
	}),
}

var syncRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "list recent catalog sync runs",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		m, closeStore, err := newReadOnlyManager(ctx, false)
		if err != nil {
			log.Fatalw("failed to create manager", zap.Error(err))
		}
		defer closeStore()

		runs, err := m.ListSyncRuns(ctx, runsLimit)
		if err != nil {
			closeStore()
			log.Fatalw("failed to list sync runs", zap.Error(err))
		}

		tw := newTable(cmd.OutOrStdout(), "ID", "Started", "Finished", "Status", "Inserted", "Updated", "Skipped", "High Water Mark", "Error")
		alignRight(tw, 1, 5, 6, 7, 8)
		for _, r := range runs {
			tw.AppendRow([]any{r.ID, ago(&r.StartedAt), ago(r.FinishedAt), r.Status, count(r.Inserted), count(r.Updated), count(r.Skipped), r.HighWaterMark, orDash(r.Error)})
		}
		tw.Render()
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.AddCommand(syncCategoriesCmd, syncCatalogCmd, syncEnrichCmd, syncFullCmd, syncAmbiguousCmd, syncRunsCmd)
	syncRunsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "number of runs to list, 0 lists all")
}
