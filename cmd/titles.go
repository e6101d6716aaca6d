package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/manager"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	titleQuery     manager.TitleQuery
	titleYear      int
	titleMinRating float64
	titleAmbiguous bool
)

// titlesCmd represents the titles command
var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "inspect catalog titles",
}

var titlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "list titles",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		m, closeStore, err := newReadOnlyManager(ctx, false)
		if err != nil {
			log.Fatalw("failed to create manager", zap.Error(err))
		}
		defer closeStore()

		q := titleQuery
		if cmd.Flags().Changed("year") {
			q.Year = &titleYear
		}
		if cmd.Flags().Changed("min-rating") {
			q.MinRating = &titleMinRating
		}
		if cmd.Flags().Changed("ambiguous") {
			q.Ambiguous = &titleAmbiguous
		}

		page, err := m.ListTitles(ctx, q)
		if err != nil {
			closeStore()
			log.Fatalw("failed to list titles", zap.Error(err))
		}

		tw := newTable(cmd.OutOrStdout(), "ID", "Stream ID", "Name", "Category", "Added", "Ambiguous", "Candidates")
		alignRight(tw, 1, 2, 7)
		for _, t := range page.Titles {
			added := time.Unix(t.AddedAt, 0)
			tw.AppendRow([]any{t.ID, t.StreamID, t.Name, t.CategoryKey, ago(&added), t.Ambiguous, len(t.Candidates)})
		}
		tw.AppendFooter([]any{"", "", fmt.Sprintf("page %d of %d", page.Meta.Page, page.Meta.TotalPages), "", "", "total", count(page.Meta.TotalItems)})
		tw.Render()
	},
}

var titlesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "show a title with its metadata or candidates",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalw("invalid title id", zap.String("id", args[0]), zap.Error(err))
		}

		m, closeStore, err := newReadOnlyManager(ctx, false)
		if err != nil {
			log.Fatalw("failed to create manager", zap.Error(err))
		}
		defer closeStore()

		title, err := m.GetTitle(ctx, id)
		if err != nil {
			closeStore()
			log.Fatalw("failed to get title", zap.Int64("id", id), zap.Error(err))
		}

		b, err := json.MarshalIndent(title, "", "  ")
		if err != nil {
			closeStore()
			log.Fatalw("failed to encode title", zap.Error(err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
	},
}

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "list provider categories",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		m, closeStore, err := newReadOnlyManager(ctx, false)
		if err != nil {
			log.Fatalw("failed to create manager", zap.Error(err))
		}
		defer closeStore()

		categories, err := m.ListCategories(ctx)
		if err != nil {
			closeStore()
			log.Fatalw("failed to list categories", zap.Error(err))
		}

		tw := newTable(cmd.OutOrStdout(), "ID", "Key", "Name", "Updated")
		alignRight(tw, 1)
		for _, c := range categories {
			tw.AppendRow([]any{c.ID, c.Key, c.Name, humanize.Time(c.UpdatedAt)})
		}
		tw.Render()
	},
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "summarize how much of the catalog is matched",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		m, closeStore, err := newReadOnlyManager(ctx, false)
		if err != nil {
			log.Fatalw("failed to create manager", zap.Error(err))
		}
		defer closeStore()

		stats, err := m.Stats(ctx)
		if err != nil {
			closeStore()
			log.Fatalw("failed to get catalog stats", zap.Error(err))
		}

		tw := newTable(cmd.OutOrStdout(), "Resolution", "Titles", "Share")
		alignRight(tw, 2, 3)
		for _, state := range []storage.ResolutionState{storage.ResolutionMatched, storage.ResolutionAmbiguous, storage.ResolutionUnresolved} {
			n := stats.ByResolution[state]
			share := "-"
			if stats.Titles > 0 {
				share = humanize.FtoaWithDigits(float64(n)*100/float64(stats.Titles), 1) + "%"
			}
			tw.AppendRow([]any{state, count(n), share})
		}
		tw.AppendFooter([]any{"total", count(stats.Titles), ""})
		tw.Render()

		tw = newTable(cmd.OutOrStdout(), "Category", "Name", "Titles")
		alignRight(tw, 3)
		for _, c := range stats.ByCategory {
			tw.AppendRow([]any{c.CategoryKey, c.Name, count(c.Count)})
		}
		tw.Render()
	},
}

func init() {
	rootCmd.AddCommand(titlesCmd, categoriesCmd, statsCmd)
	titlesCmd.AddCommand(titlesListCmd, titlesGetCmd)

	flags := titlesListCmd.Flags()
	flags.StringVarP(&titleQuery.Query, "query", "q", "", "substring of the title name")
	flags.StringVar(&titleQuery.CategoryKey, "category", "", "provider category key")
	flags.IntVar(&titleYear, "year", 0, "year the provider added the title")
	flags.Float64Var(&titleMinRating, "min-rating", 0, "minimum TMDB vote average")
	flags.BoolVar(&titleAmbiguous, "ambiguous", false, "only ambiguous titles, or only unambiguous ones with --ambiguous=false")
	flags.IntVar(&titleQuery.Page, "page", 1, "page to list")
	flags.IntVar(&titleQuery.PageSize, "page-size", 20, "titles per page")
}
