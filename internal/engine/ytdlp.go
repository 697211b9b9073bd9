package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/muratoffalex/ytgrab/internal/logger"
)

const (
	unknownResolution       = "unknown"
	defaultProgressInterval = 500 * time.Millisecond
	stderrPipe              = "stderr"
)

var diagnosticPrefixes = []string{"WARNING:", "ERROR:"}

type YtdlpConfig struct {
	Proxy string
	// FFmpegLocation is passed through only when it points at a concrete path.
	FFmpegLocation string
	// Progress, when set, receives transfer progress during Fetch.
	Progress         ProgressFunc
	ProgressInterval time.Duration
}

type YtdlpEngine struct {
	config YtdlpConfig
	logger logger.Logger
}

func NewYtdlpEngine(l logger.Logger, config YtdlpConfig) *YtdlpEngine {
	if config.ProgressInterval <= 0 {
		config.ProgressInterval = defaultProgressInterval
	}
	return &YtdlpEngine{
		config: config,
		logger: l,
	}
}

// Install downloads a managed yt-dlp binary when none is available.
func Install(ctx context.Context) error {
	_, err := ytdlp.Install(ctx, nil)
	return err
}

func (e *YtdlpEngine) command() *ytdlp.Command {
	dl := ytdlp.New()
	if e.config.Proxy != "" {
		dl.Proxy(e.config.Proxy)
	}
	if strings.ContainsAny(e.config.FFmpegLocation, `/\`) {
		dl.FFmpegLocation(e.config.FFmpegLocation)
	}
	return dl
}

// probeCommand queries metadata of a single video without transferring it.
func (e *YtdlpEngine) probeCommand() *ytdlp.Command {
	return e.command().
		SkipDownload().
		NoPlaylist().
		NoWarnings().
		PrintJSON()
}

// fetchCommand translates req into yt-dlp flags.
func (e *YtdlpEngine) fetchCommand(req FetchRequest) *ytdlp.Command {
	dl := e.command().
		Format(req.Format).
		Output(req.OutputTemplate).
		PrintJSON()

	opts := req.Options
	if opts.MergeFormat != "" {
		dl.MergeOutputFormat(opts.MergeFormat)
	}
	if opts.IgnoreErrors {
		dl.IgnoreErrors()
	}
	if opts.ArchivePath != "" {
		dl.DownloadArchive(opts.ArchivePath)
	}
	for _, r := range opts.Ranges {
		dl.DownloadSections(r.Section())
	}
	if opts.ForceKeyframesAtCuts {
		dl.ForceKeyframesAtCuts()
	}
	if audio := opts.ExtractAudio; audio != nil {
		dl.ExtractAudio().
			AudioFormat(audio.Codec).
			AudioQuality(audio.Quality)
	}
	if e.config.Progress != nil {
		report := e.config.Progress
		dl.ProgressFunc(e.config.ProgressInterval, func(update ytdlp.ProgressUpdate) {
			report(toProgress(update))
		})
	}
	return dl
}

func (e *YtdlpEngine) Probe(ctx context.Context, url string) (*MediaInfo, error) {
	e.logger.WithField(logger.FieldURL, url).Debug("Probing media")
	res, err := e.probeCommand().Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProbe, err)
	}

	infos, err := res.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProbe, err)
	}
	return firstMediaInfo(infos)
}

func (e *YtdlpEngine) Fetch(ctx context.Context, req FetchRequest) (*FetchResult, error) {
	e.logger.WithFields(logger.Fields{
		logger.FieldURL: req.URL,
		"format":        req.Format,
		"output":        req.OutputTemplate,
	}).Debug("Fetching media")
	res, err := e.fetchCommand(req).Run(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	result := &FetchResult{Diagnostics: diagnostics(res.OutputLogs)}
	infos, err := res.GetExtractedInfo()
	if err != nil {
		// the transfer itself succeeded, only the report is unreadable
		e.logger.WithError(err).Warn("Failed to decode fetch report")
		return result, nil
	}
	fillFetchResult(result, infos)
	return result, nil
}

func firstMediaInfo(infos []*ytdlp.ExtractedInfo) (*MediaInfo, error) {
	if len(infos) == 0 || infos[0] == nil {
		return nil, fmt.Errorf("%w: %w", ErrProbe, ErrNoMediaInfo)
	}
	return toMediaInfo(infos[0]), nil
}

func fillFetchResult(result *FetchResult, infos []*ytdlp.ExtractedInfo) {
	result.Items = len(infos)
	if len(infos) == 0 || infos[0] == nil {
		return
	}
	first := infos[0]
	result.Title = deref(first.Title)
	result.PlaylistTitle = deref(first.PlaylistTitle)
}

func toMediaInfo(info *ytdlp.ExtractedInfo) *MediaInfo {
	media := &MediaInfo{
		Title:   deref(info.Title),
		Formats: make([]Format, 0, len(info.Formats)),
	}
	if info.Duration != nil {
		media.Duration = *info.Duration
	}
	for _, f := range info.Formats {
		if f != nil {
			media.Formats = append(media.Formats, toFormat(f))
		}
	}
	return media
}

// toFormat maps a yt-dlp format. The library clears "none" strings, so an
// absent codec maps to "" and video presence is decided by the height.
func toFormat(f *ytdlp.ExtractedFormat) Format {
	format := Format{
		ID:         deref(f.FormatID),
		Extension:  deref(f.Extension),
		Resolution: unknownResolution,
		VideoCodec: deref(f.VCodec),
		FPS:        f.FPS,
	}
	if f.Resolution != nil && *f.Resolution != "" {
		format.Resolution = *f.Resolution
	}
	if f.Height != nil {
		format.Height = int(*f.Height)
	}
	switch {
	case f.FileSize != nil && *f.FileSize > 0:
		format.FileSize = int64(*f.FileSize)
	case f.FileSizeApprox != nil && *f.FileSizeApprox > 0:
		format.FileSize = int64(*f.FileSizeApprox)
	}
	return format
}

func toProgress(update ytdlp.ProgressUpdate) Progress {
	p := Progress{
		Status:          string(update.Status),
		Percent:         update.Percent(),
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		ETA:             update.ETA(),
		Finished:        update.Status.IsCompletedType(),
	}
	if update.Info != nil {
		p.Title = deref(update.Info.Title)
	}
	return p
}

// diagnostics collects engine warnings and errors from stderr.
func diagnostics(logs []*ytdlp.ResultLog) []string {
	var lines []string
	for _, l := range logs {
		if l == nil || l.Pipe != stderrPipe {
			continue
		}
		line := strings.TrimSpace(l.Line)
		for _, prefix := range diagnosticPrefixes {
			if strings.HasPrefix(line, prefix) {
				lines = append(lines, line)
				break
			}
		}
	}
	return lines
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
