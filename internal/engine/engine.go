// Package engine describes the external extraction/download engine as a
// capability interface and implements it on top of yt-dlp.
package engine

import (
	"context"
	"errors"
	"strconv"
	"time"
)

var (
	ErrProbe       = errors.New("failed to probe media")
	ErrFetch       = errors.New("failed to fetch media")
	ErrNoMediaInfo = errors.New("no media info available")
)

// Engine resolves URLs to media metadata and performs transfers.
type Engine interface {
	// Probe returns metadata and the format list without transferring media.
	Probe(ctx context.Context, url string) (*MediaInfo, error)
	// Fetch performs the transfer described by req.
	Fetch(ctx context.Context, req FetchRequest) (*FetchResult, error)
}

// Format is a single downloadable rendition reported by the engine.
type Format struct {
	ID         string
	Extension  string
	Resolution string
	VideoCodec string
	// Height is 0 for audio-only or unknown renditions.
	Height int
	// FPS is nil when the engine does not know the frame rate.
	FPS *float64
	// FileSize is exact or approximate size in bytes, 0 when absent.
	FileSize int64
}

// HasVideo reports whether the format carries video with a known height.
func (f Format) HasVideo() bool {
	return f.VideoCodec != "none" && f.Height > 0
}

type MediaInfo struct {
	Title string
	// Duration in seconds, 0 when unknown.
	Duration float64
	Formats  []Format
}

// TimeRange is a time window in seconds.
type TimeRange struct {
	Start float64
	End   float64
}

// Section renders the range in yt-dlp --download-sections syntax.
func (r TimeRange) Section() string {
	return "*" + formatSeconds(r.Start) + "-" + formatSeconds(r.End)
}

// AudioExtraction requests a post-transfer audio re-encode.
type AudioExtraction struct {
	Codec   string
	Quality string
}

type FetchOptions struct {
	MergeFormat          string
	IgnoreErrors         bool
	ArchivePath          string
	Ranges               []TimeRange
	ForceKeyframesAtCuts bool
	ExtractAudio         *AudioExtraction
}

type FetchRequest struct {
	URL            string
	Format         string
	OutputTemplate string
	Options        FetchOptions
}

type FetchResult struct {
	Title         string
	PlaylistTitle string
	// Items is the number of entries the engine reported as processed.
	Items int
	// Diagnostics holds the WARNING/ERROR lines the engine wrote while the
	// transfer still succeeded, e.g. playlist items it skipped.
	Diagnostics []string
}

// Progress is a point-in-time snapshot of a running transfer.
type Progress struct {
	Title           string
	Status          string
	Percent         float64
	DownloadedBytes int64
	TotalBytes      int64
	ETA             time.Duration
	Finished        bool
}

// ProgressFunc receives transfer progress while Fetch blocks.
type ProgressFunc func(Progress)

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
