package transcoder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muratoffalex/ytgrab/internal/logger"
)

func TestBuildReencodeAudioArgs(t *testing.T) {
	tests := []struct {
		name     string
		codec    string
		quality  string
		expected []string
	}{
		{
			name:     "mp3 bitrate",
			codec:    "mp3",
			quality:  "192",
			expected: []string{"-y", "-i", "in.webm", "-vn", "-c:a", "libmp3lame", "-b:a", "192k", "out.mp3"},
		},
		{
			name:     "bitrate with suffix",
			codec:    "MP3",
			quality:  "320K",
			expected: []string{"-y", "-i", "in.webm", "-vn", "-c:a", "libmp3lame", "-b:a", "320k", "out.mp3"},
		},
		{
			name:     "vbr level",
			codec:    "opus",
			quality:  "5",
			expected: []string{"-y", "-i", "in.webm", "-vn", "-c:a", "libopus", "-q:a", "5", "out.mp3"},
		},
		{
			name:     "unknown codec without quality",
			codec:    "alac",
			quality:  "",
			expected: []string{"-y", "-i", "in.webm", "-vn", "-c:a", "alac", "out.mp3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := BuildReencodeAudioArgs("in.webm", "out.mp3", tt.codec, tt.quality)
			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestBuildTrimArgs(t *testing.T) {
	args := BuildTrimArgs("/in.mp4", "/out.mp4", 60, 150.5)

	expected := []string{
		"-y",
		"-ss", "60",
		"-to", "150.5",
		"-i", "/in.mp4",
		"-c:v", TrimVideoCodec,
		"-preset", TrimVideoPreset,
		"-crf", TrimVideoCRF,
		"-force_key_frames", "expr:eq(n,0)",
		"-c:a", TrimAudioCodec,
		"-movflags", FastStartFlag,
		"/out.mp4",
	}
	assert.Equal(t, expected, args)
}

func TestFFmpeg_MissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-ffmpeg-here")
	f := NewFFmpeg(missing, logger.NewTestLogger())

	assert.False(t, f.IsAvailable())
	assert.Equal(t, missing, f.Location())

	err := f.ReencodeAudio(context.Background(), "in.webm", "out.mp3", "mp3", "192")
	require.ErrorIs(t, err, ErrFFmpegMissing)

	err = f.TrimAtKeyframes(context.Background(), "in.mp4", "out.mp4", 60, 120)
	require.ErrorIs(t, err, ErrFFmpegMissing)
}

func TestFFmpeg_TrimRejectsInvalidWindow(t *testing.T) {
	f := NewFFmpeg("", logger.NewTestLogger())

	err := f.TrimAtKeyframes(context.Background(), "in.mp4", "out.mp4", 120, 60)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrFFmpegMissing)
}
