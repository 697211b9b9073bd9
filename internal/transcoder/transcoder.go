// Package transcoder wraps the local ffmpeg binary used for audio re-encoding
// and keyframe-aligned trimming.
package transcoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/muratoffalex/ytgrab/internal/logger"
)

const (
	FFmpegCommand   = "ffmpeg"
	TrimVideoCodec  = "libx264"
	TrimVideoPreset = "medium"
	TrimVideoCRF    = "23"
	TrimAudioCodec  = "aac"
	FastStartFlag   = "+faststart"
	// qualities up to this value are VBR levels, larger ones are kbps
	maxVBRQuality = 10
)

var ErrFFmpegMissing = errors.New("ffmpeg is not installed or not found in PATH")

var audioEncoders = map[string]string{
	"mp3":    "libmp3lame",
	"aac":    "aac",
	"m4a":    "aac",
	"opus":   "libopus",
	"vorbis": "libvorbis",
	"flac":   "flac",
	"wav":    "pcm_s16le",
}

type Transcoder interface {
	IsAvailable() bool
	ReencodeAudio(ctx context.Context, inputPath, outputPath, codec, quality string) error
	TrimAtKeyframes(ctx context.Context, inputPath, outputPath string, start, end float64) error
}

type FFmpeg struct {
	path   string
	logger logger.Logger
}

// NewFFmpeg returns an ffmpeg wrapper. An empty path means "ffmpeg" on PATH.
func NewFFmpeg(path string, l logger.Logger) *FFmpeg {
	if path == "" {
		path = FFmpegCommand
	}
	return &FFmpeg{path: path, logger: l}
}

func (f *FFmpeg) IsAvailable() bool {
	_, err := exec.LookPath(f.path)
	return err == nil
}

// Location is the resolved executable path, or the configured value when it
// cannot be resolved.
func (f *FFmpeg) Location() string {
	if resolved, err := exec.LookPath(f.path); err == nil {
		return resolved
	}
	return f.path
}

func (f *FFmpeg) ReencodeAudio(ctx context.Context, inputPath, outputPath, codec, quality string) error {
	return f.run(ctx, BuildReencodeAudioArgs(inputPath, outputPath, codec, quality))
}

func (f *FFmpeg) TrimAtKeyframes(ctx context.Context, inputPath, outputPath string, start, end float64) error {
	if start < 0 || end <= start {
		return fmt.Errorf("invalid trim window %v-%v", start, end)
	}
	return f.run(ctx, BuildTrimArgs(inputPath, outputPath, start, end))
}

func (f *FFmpeg) run(ctx context.Context, args []string) error {
	if !f.IsAvailable() {
		return ErrFFmpegMissing
	}

	cmd := exec.CommandContext(ctx, f.path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	f.logger.WithField("args", strings.Join(args, " ")).Debug("Running ffmpeg")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg error: %v\n%s", err, stderr.String())
	}
	return nil
}

func BuildReencodeAudioArgs(inputPath, outputPath, codec, quality string) []string {
	encoder, ok := audioEncoders[strings.ToLower(codec)]
	if !ok {
		encoder = codec
	}

	args := []string{
		"-y",
		"-i", inputPath,
		"-vn",
		"-c:a", encoder,
	}

	if quality != "" {
		q := strings.TrimSuffix(strings.ToUpper(quality), "K")
		if n, err := strconv.ParseFloat(q, 64); err == nil && n <= maxVBRQuality {
			args = append(args, "-q:a", q)
		} else {
			args = append(args, "-b:a", q+"k")
		}
	}

	return append(args, outputPath)
}

func BuildTrimArgs(inputPath, outputPath string, start, end float64) []string {
	return []string{
		"-y",
		"-ss", formatSeconds(start),
		"-to", formatSeconds(end),
		"-i", inputPath,
		"-c:v", TrimVideoCodec,
		"-preset", TrimVideoPreset,
		"-crf", TrimVideoCRF,
		"-force_key_frames", "expr:eq(n,0)",
		"-c:a", TrimAudioCodec,
		"-movflags", FastStartFlag,
		outputPath,
	}
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
