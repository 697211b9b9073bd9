// Package downloader implements the five download operations offered by the
// menu: best video, audio only, manual quality, playlist and trimmed range.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muratoffalex/ytgrab/internal/console"
	"github.com/muratoffalex/ytgrab/internal/engine"
	"github.com/muratoffalex/ytgrab/internal/formats"
	"github.com/muratoffalex/ytgrab/internal/logger"
	"github.com/muratoffalex/ytgrab/internal/service"
	"github.com/muratoffalex/ytgrab/internal/transcoder"
	"github.com/muratoffalex/ytgrab/internal/trim"
)

const (
	OpVideo    = "video"
	OpAudio    = "audio"
	OpQuality  = "quality"
	OpPlaylist = "playlist"
	OpTrim     = "trim"

	unknownTitle = "Unknown"
	ruleWidth    = 50
)

var (
	ErrCancelled      = errors.New("download cancelled")
	ErrNoVideoFormats = errors.New("no video formats found")
)

type Service struct {
	config     Config
	logger     logger.Logger
	engine     engine.Engine
	transcoder transcoder.Transcoder
	console    *console.Console
	localizer  *service.Localizer
}

func NewService(
	l logger.Logger,
	e engine.Engine,
	t transcoder.Transcoder,
	c *console.Console,
	localizer *service.Localizer,
	config Config,
) *Service {
	if config.MaxFormatRows <= 0 {
		config.MaxFormatRows = formats.DefaultMaxRows
	}
	return &Service{
		config:     config,
		logger:     l,
		engine:     e,
		transcoder: t,
		console:    c,
		localizer:  localizer,
	}
}

// EnsureOutputDir creates the output directory if it does not exist yet and
// reports the creation.
func (s *Service) EnsureOutputDir() error {
	if _, err := os.Stat(s.config.OutputDir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}
	if err := os.MkdirAll(s.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	s.console.Println(s.localizer.Localize("app.createdDirectory", map[string]any{
		"Path": s.config.OutputDir,
	}))
	return nil
}

// begin returns a logger scoped to a single operation run.
func (s *Service) begin(op, url string) logger.Logger {
	opID := strconv.FormatInt(time.Now().UnixNano(), 10)
	if id, err := uuid.NewV7(); err == nil {
		opID = id.String()
	}
	l := s.logger.WithFields(logger.Fields{
		logger.FieldOp:   op,
		logger.FieldOpID: opID,
		logger.FieldURL:  url,
	})
	l.Info("Operation started")
	return l
}

func (s *Service) announce(messageID string, data map[string]any) {
	s.console.Println()
	s.console.Println(s.localizer.Localize(messageID, data))
	s.console.Rule("-", ruleWidth)
}

func (s *Service) fail(l logger.Logger, messageID string, err error) error {
	l.WithError(err).Error("Operation failed")
	s.console.Failure(s.localizer.Localize(messageID, map[string]any{"Error": err.Error()}))
	return err
}

// fetch runs req on the engine and closes the progress line it left open.
// Problems the engine reported without failing are logged.
func (s *Service) fetch(ctx context.Context, l logger.Logger, req engine.FetchRequest) (*engine.FetchResult, error) {
	res, err := s.engine.Fetch(ctx, req)
	s.console.EndStatus()
	if err != nil {
		return nil, err
	}
	for _, line := range res.Diagnostics {
		l.WithField("diagnostic", line).Warn("Engine reported a problem")
	}
	return res, nil
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}

// DownloadVideo fetches the best video and audio streams merged into the
// configured container.
func (s *Service) DownloadVideo(ctx context.Context, url string) error {
	l := s.begin(OpVideo, url)
	if err := s.EnsureOutputDir(); err != nil {
		return s.fail(l, "download.video.failed", err)
	}

	s.announce("download.video.start", map[string]any{"URL": url})
	res, err := s.fetch(ctx, l, s.config.VideoRequest(url))
	if err != nil {
		return s.fail(l, "download.video.failed", err)
	}

	title := titleOr(res.Title, unknownTitle)
	l.WithField("title", title).Info("Video downloaded")
	s.console.Success(s.localizer.Localize("download.video.done", map[string]any{"Title": title}))
	return nil
}

// DownloadAudio fetches the best audio stream and re-encodes it to the
// configured codec and quality.
func (s *Service) DownloadAudio(ctx context.Context, url string) error {
	l := s.begin(OpAudio, url)
	if err := s.EnsureOutputDir(); err != nil {
		return s.fail(l, "download.audio.failed", err)
	}

	s.announce("download.audio.start", map[string]any{
		"Codec": strings.ToUpper(s.config.AudioCodec),
		"URL":   url,
	})
	res, err := s.fetch(ctx, l, s.config.AudioRequest(url))
	if err != nil {
		return s.fail(l, "download.audio.failed", err)
	}

	title := titleOr(res.Title, unknownTitle)
	l.WithField("title", title).Info("Audio downloaded")
	s.console.Success(s.localizer.Localize("download.audio.done", map[string]any{"Title": title}))
	return nil
}

// DownloadWithQualitySelection lists the video formats, lets the user pick
// one and downloads it together with the best audio.
func (s *Service) DownloadWithQualitySelection(ctx context.Context, url string) error {
	l := s.begin(OpQuality, url)
	if err := s.EnsureOutputDir(); err != nil {
		return s.fail(l, "download.error", err)
	}

	s.announce("download.quality.fetching", map[string]any{"URL": url})
	info, err := s.engine.Probe(ctx, url)
	if err != nil {
		return s.fail(l, "download.error", err)
	}
	title := titleOr(info.Title, unknownTitle)

	video := formats.VideoFormats(info.Formats)
	if len(video) == 0 {
		l.Warn("No video formats in probe result")
		s.console.Println(s.localizer.T("download.quality.noFormats"))
		return ErrNoVideoFormats
	}
	rows := formats.Top(video, s.config.MaxFormatRows)

	s.console.Println()
	s.console.Println(s.localizer.Localize("download.quality.available", map[string]any{"Title": title}))
	if err := formats.WriteTable(s.console.Writer(), rows); err != nil {
		return s.fail(l, "download.error", err)
	}

	selected, err := s.selectFormat(rows)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			l.Info("Selection cancelled")
			s.console.Println(s.localizer.T("download.quality.cancelled"))
		}
		return err
	}
	l = l.WithField("format_id", selected.ID)

	s.announce("download.quality.downloading", map[string]any{"Resolution": selected.Resolution})
	if _, err := s.fetch(ctx, l, s.config.QualityRequest(url, selected.ID)); err != nil {
		return s.fail(l, "download.error", err)
	}

	l.WithField("title", title).Info("Video downloaded")
	s.console.Success(s.localizer.Localize("download.quality.done", map[string]any{"Title": title}))
	return nil
}

// selectFormat prompts until a row index or 0 is entered.
func (s *Service) selectFormat(rows []engine.Format) (engine.Format, error) {
	limit := map[string]any{"Max": len(rows)}
	for {
		s.console.Println()
		line, err := s.console.Prompt(s.localizer.Localize("download.quality.prompt", limit))
		if err != nil {
			return engine.Format{}, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			s.console.Println(s.localizer.T("download.quality.notNumber"))
			continue
		}
		if choice == 0 {
			return engine.Format{}, ErrCancelled
		}
		if choice < 1 || choice > len(rows) {
			s.console.Println(s.localizer.Localize("download.quality.outOfRange", limit))
			continue
		}
		return rows[choice-1], nil
	}
}

// DownloadPlaylist fetches every playlist item. Success reflects only the
// overall call, failing items are skipped by the engine.
func (s *Service) DownloadPlaylist(ctx context.Context, url string) error {
	l := s.begin(OpPlaylist, url)
	if err := s.EnsureOutputDir(); err != nil {
		return s.fail(l, "download.playlist.failed", err)
	}

	s.announce("download.playlist.start", map[string]any{"URL": url})
	res, err := s.fetch(ctx, l, s.config.PlaylistRequest(url))
	if err != nil {
		return s.fail(l, "download.playlist.failed", err)
	}

	title := titleOr(res.PlaylistTitle, titleOr(res.Title, unknownTitle))
	l.WithFields(logger.Fields{
		"title":    title,
		"items":    res.Items,
		"problems": len(res.Diagnostics),
	}).Info("Playlist downloaded")
	s.console.Success(s.localizer.Localize("download.playlist.done", map[string]any{"Title": title}))
	if len(res.Diagnostics) > 0 {
		s.console.Warning(s.localizer.Localize("download.playlist.problems", map[string]any{
			"Count": len(res.Diagnostics),
		}))
		for _, line := range res.Diagnostics {
			s.console.Println("  " + line)
		}
	}
	return nil
}

// DownloadTrimmed fetches only the window entered by the user, cut at
// keyframes. ffmpeg must be available before anything touches the network.
func (s *Service) DownloadTrimmed(ctx context.Context, url string) error {
	l := s.begin(OpTrim, url)
	if err := s.EnsureOutputDir(); err != nil {
		return s.fail(l, "download.error", err)
	}

	if !s.transcoder.IsAvailable() {
		l.WithError(transcoder.ErrFFmpegMissing).Error("Operation failed")
		s.console.Failure(s.localizer.T("download.trim.ffmpegRequired"))
		s.console.Println(s.localizer.T("download.trim.ffmpegInstall"))
		return transcoder.ErrFFmpegMissing
	}

	info, err := s.engine.Probe(ctx, url)
	if err != nil {
		return s.fail(l, "download.error", err)
	}

	s.console.Println()
	s.console.Println(s.localizer.Localize("download.trim.video", map[string]any{
		"Title": titleOr(info.Title, unknownTitle),
	}))
	if info.Duration > 0 {
		s.console.Println(s.localizer.Localize("download.trim.duration", map[string]any{
			"Duration": trim.FormatDuration(info.Duration),
		}))
	}
	s.console.Rule("-", ruleWidth)

	startMin, endMin, window, err := s.readRange(info.Duration)
	if err != nil {
		return err
	}
	l = l.WithFields(logger.Fields{"start": window.Start, "end": window.End})

	s.console.Println()
	s.console.Println(s.localizer.Localize("download.trim.section", map[string]any{
		"Start": trim.FormatSeconds(startMin),
		"End":   trim.FormatSeconds(endMin),
	}))
	s.console.Println(s.localizer.Localize("download.trim.length", map[string]any{
		"Seconds": fmt.Sprintf("%.0f", window.Length()),
	}))
	s.console.Rule("-", ruleWidth)

	if _, err := s.fetch(ctx, l, s.config.TrimmedRequest(url, window)); err != nil {
		return s.fail(l, "download.error", err)
	}

	l.Info("Trimmed section downloaded")
	s.console.Success(s.localizer.T("download.trim.done"))
	s.console.Success(s.localizer.Localize("download.trim.window", map[string]any{
		"Start": trim.FormatClock(startMin),
		"End":   trim.FormatClock(endMin),
	}))
	return nil
}

// readRange prompts for start and end minutes until the pair validates.
func (s *Service) readRange(duration float64) (float64, float64, trim.Range, error) {
	for {
		startMin, err := s.readMinutes("download.trim.startPrompt")
		if errors.Is(err, trim.ErrInvalidNumber) {
			s.console.Reject(s.localizer.T("download.trim.invalidNumber"))
			continue
		}
		if err != nil {
			return 0, 0, trim.Range{}, err
		}

		endMin, err := s.readMinutes("download.trim.endPrompt")
		if errors.Is(err, trim.ErrInvalidNumber) {
			s.console.Reject(s.localizer.T("download.trim.invalidNumber"))
			continue
		}
		if err != nil {
			return 0, 0, trim.Range{}, err
		}

		window, err := trim.Validate(startMin, endMin, duration)
		switch {
		case err == nil:
			return startMin, endMin, window, nil
		case errors.Is(err, trim.ErrNotPositive):
			s.console.Reject(s.localizer.T("download.trim.notPositive"))
		case errors.Is(err, trim.ErrStartAfterEnd):
			s.console.Reject(s.localizer.T("download.trim.startAfterEnd"))
		case errors.Is(err, trim.ErrExceedsDuration):
			s.console.Reject(s.localizer.Localize("download.trim.exceedsDuration", map[string]any{
				"Duration": trim.FormatDuration(duration),
			}))
		default:
			return 0, 0, trim.Range{}, err
		}
	}
}

func (s *Service) readMinutes(promptID string) (float64, error) {
	line, err := s.console.Prompt(s.localizer.T(promptID))
	if err != nil {
		return 0, err
	}
	return trim.ParseMinutes(line)
}
