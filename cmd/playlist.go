package cmd

import (
	"bufio"
	"context"
	"os"

	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/playlist"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	playlistGenre  string
	playlistLimit  int
	playlistOutput string
)

// playlistCmd represents the playlist command
var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "export matched titles as an m3u playlist",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		m, closeStore, err := newReadOnlyManager(ctx, true)
		if err != nil {
			log.Fatalw("failed to create manager", zap.Error(err))
		}
		defer closeStore()

		out := cmd.OutOrStdout()
		if playlistOutput != "" && playlistOutput != "-" {
			f, err := os.Create(playlistOutput)
			if err != nil {
				closeStore()
				log.Fatalw("failed to create playlist file", zap.String("file", playlistOutput), zap.Error(err))
			}
			defer f.Close()
			out = f
		}

		w := bufio.NewWriter(out)
		if err := m.WritePlaylist(ctx, w, playlistGenre, playlistLimit); err != nil {
			closeStore()
			log.Fatalw("failed to write playlist", zap.Error(err))
		}
		if err := w.Flush(); err != nil {
			closeStore()
			log.Fatalw("failed to write playlist", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(playlistCmd)
	playlistCmd.Flags().StringVarP(&playlistGenre, "genre", "g", "", "only titles of this genre")
	playlistCmd.Flags().IntVarP(&playlistLimit, "limit", "n", playlist.DefaultLimit, "maximum number of titles")
	playlistCmd.Flags().StringVarP(&playlistOutput, "output", "o", "", "file to write, stdout when empty")
}
