package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/storage/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	jet "github.com/go-jet/jet/v2/generator/sqlite"
)

var outputDirectory string

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "generate database code",
	Long:  `run the embedded migrations into a temporary database and generate jet code from it`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		dir, err := os.MkdirTemp("", "vodz-schema")
		if err != nil {
			log.Fatalw("failed to create temp dir", zap.Error(err))
		}
		defer os.RemoveAll(dir)

		dbPath := filepath.Join(dir, "tmp.sqlite")
		tmpStorage, err := sqlite.New(ctx, dbPath)
		if err != nil {
			log.Fatalw("failed to open temp database", zap.Error(err))
		}
		defer tmpStorage.Close()

		if err := tmpStorage.RunMigrations(ctx); err != nil {
			log.Fatalw("failed to run migrations", zap.Error(err))
		}

		if err := jet.GenerateDSN(dbPath, outputDirectory); err != nil {
			log.Fatalw("failed to generate", zap.Error(err))
		}

		log.Infow("successfully generated", zap.String("out", outputDirectory))
	},
}

func init() {
	generateCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&outputDirectory, "out", "o", "./pkg/storage/sqlite/schema/gen", "directory to output generated code to")
}
