// Package playlist renders catalog titles as an extended M3U playlist.
package playlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kasuboski/vodz/pkg/storage"
)

const (
	ContentType      = "application/x-mpegURL"
	DefaultContainer = "mp4"
	DefaultLimit     = 50
)

// StreamURLFunc builds the playback url of a provider stream
type StreamURLFunc func(streamID int64, ext string) string

var attrReplacer = strings.NewReplacer(`"`, `'`, "\r", " ", "\n", " ")
var nameReplacer = strings.NewReplacer("\r", " ", "\n", " ")

// Export writes the header and one entry per title. group is used as the group-title of every entry.
func Export(w io.Writer, entries []*storage.PlaylistEntry, streamURL StreamURLFunc, group string) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("#EXTM3U\n"); err != nil {
		return err
	}

	for _, e := range entries {
		icon := ""
		if e.Icon != nil {
			icon = *e.Icon
		}

		ext := DefaultContainer
		if e.ContainerExtension != nil && *e.ContainerExtension != "" {
			ext = *e.ContainerExtension
		}

		_, err := fmt.Fprintf(bw, "#EXTINF:-1 tvg-id=\"%d\" tvg-name=\"%s\" tvg-logo=\"%s\" group-title=\"%s\",%s\n%s\n",
			e.StreamID,
			attrReplacer.Replace(e.Name),
			attrReplacer.Replace(icon),
			attrReplacer.Replace(group),
			nameReplacer.Replace(e.Name),
			streamURL(e.StreamID, ext),
		)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}
