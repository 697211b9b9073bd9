// Package formats selects and renders the video formats offered for manual
// quality selection.
package formats

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/muratoffalex/ytgrab/internal/engine"
)

const (
	DefaultMaxRows = 20
	UnknownSize    = "Unknown"
	UnknownFPS     = "unknown"
	tableWidth     = 70
	bytesPerMB     = 1024 * 1024
)

// VideoFormats keeps formats that carry video with a known height, ordered by
// height descending. Equal heights keep their original relative order.
func VideoFormats(all []engine.Format) []engine.Format {
	video := make([]engine.Format, 0, len(all))
	for _, f := range all {
		if f.HasVideo() {
			video = append(video, f)
		}
	}
	sort.SliceStable(video, func(i, j int) bool {
		return video[i].Height > video[j].Height
	})
	return video
}

// Top returns at most n leading formats.
func Top(list []engine.Format, n int) []engine.Format {
	if n < 0 {
		n = 0
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}

// SizeString renders a byte count as megabytes with one decimal.
func SizeString(bytes int64) string {
	if bytes <= 0 {
		return UnknownSize
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/bytesPerMB)
}

func FPSString(fps *float64) string {
	if fps == nil {
		return UnknownFPS
	}
	return strconv.FormatFloat(*fps, 'f', -1, 64)
}

// Row renders a single fixed-width table line for the 1-based index.
func Row(index int, f engine.Format) string {
	return fmt.Sprintf("%-5d %-12s %-8s %-8s %-15s",
		index, f.Resolution, FPSString(f.FPS), f.Extension, SizeString(f.FileSize))
}

func Header() string {
	return fmt.Sprintf("%-5s %-12s %-8s %-8s %-15s", "No.", "Resolution", "FPS", "Format", "Size")
}

func Separator() string {
	return strings.Repeat("-", tableWidth)
}

// WriteTable writes the header, one row per format and a closing separator.
func WriteTable(w io.Writer, rows []engine.Format) error {
	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, Separator(), Header(), Separator())
	for i, f := range rows {
		lines = append(lines, Row(i+1, f))
	}
	lines = append(lines, Separator())

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
