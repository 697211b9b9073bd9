package downloader

import (
	"path/filepath"

	"github.com/muratoffalex/ytgrab/internal/engine"
	"github.com/muratoffalex/ytgrab/internal/trim"
)

const (
	BestVideoFormat   = "bestvideo+bestaudio/best"
	BestAudioFormat   = "bestaudio/best"
	bestAudioSuffix   = "+bestaudio/best"
	TitleTemplate     = "%(title)s.%(ext)s"
	PlaylistDirectory = "%(playlist_title)s"
	PlaylistItem      = "%(playlist_index)s - %(title)s.%(ext)s"
)

// Config holds the values every request is built from.
type Config struct {
	OutputDir     string
	ArchivePath   string
	MergeFormat   string
	AudioCodec    string
	AudioQuality  string
	MaxFormatRows int
}

// QualitySelector pairs a concrete video format with the best audio stream.
func QualitySelector(formatID string) string {
	return formatID + bestAudioSuffix
}

// TrimmedTemplate names the output after the window boundaries in seconds.
func TrimmedTemplate(r trim.Range) string {
	return "%(title)s_trimmed_" + trim.FormatSeconds(r.Start) + "_to_" + trim.FormatSeconds(r.End) + ".%(ext)s"
}

func (c Config) VideoRequest(url string) engine.FetchRequest {
	return engine.FetchRequest{
		URL:            url,
		Format:         BestVideoFormat,
		OutputTemplate: filepath.Join(c.OutputDir, TitleTemplate),
		Options: engine.FetchOptions{
			MergeFormat: c.MergeFormat,
		},
	}
}

func (c Config) AudioRequest(url string) engine.FetchRequest {
	return engine.FetchRequest{
		URL:            url,
		Format:         BestAudioFormat,
		OutputTemplate: filepath.Join(c.OutputDir, TitleTemplate),
		Options: engine.FetchOptions{
			ExtractAudio: &engine.AudioExtraction{
				Codec:   c.AudioCodec,
				Quality: c.AudioQuality,
			},
		},
	}
}

func (c Config) QualityRequest(url, formatID string) engine.FetchRequest {
	return engine.FetchRequest{
		URL:            url,
		Format:         QualitySelector(formatID),
		OutputTemplate: filepath.Join(c.OutputDir, TitleTemplate),
		Options: engine.FetchOptions{
			MergeFormat: c.MergeFormat,
		},
	}
}

// PlaylistRequest nests items under the playlist title, skips failing items
// and records finished ones in the archive so reruns fetch nothing twice.
func (c Config) PlaylistRequest(url string) engine.FetchRequest {
	return engine.FetchRequest{
		URL:            url,
		Format:         BestVideoFormat,
		OutputTemplate: filepath.Join(c.OutputDir, PlaylistDirectory, PlaylistItem),
		Options: engine.FetchOptions{
			MergeFormat:  c.MergeFormat,
			IgnoreErrors: true,
			ArchivePath:  c.ArchivePath,
		},
	}
}

func (c Config) TrimmedRequest(url string, r trim.Range) engine.FetchRequest {
	return engine.FetchRequest{
		URL:            url,
		Format:         BestVideoFormat,
		OutputTemplate: filepath.Join(c.OutputDir, TrimmedTemplate(r)),
		Options: engine.FetchOptions{
			MergeFormat:          c.MergeFormat,
			Ranges:               []engine.TimeRange{{Start: r.Start, End: r.End}},
			ForceKeyframesAtCuts: true,
		},
	}
}
