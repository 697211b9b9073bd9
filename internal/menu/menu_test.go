package menu

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muratoffalex/ytgrab/internal/console"
	"github.com/muratoffalex/ytgrab/internal/downloader"
	"github.com/muratoffalex/ytgrab/internal/engine"
	"github.com/muratoffalex/ytgrab/internal/logger"
	"github.com/muratoffalex/ytgrab/internal/service"
	"github.com/muratoffalex/ytgrab/internal/transcoder"
)

const testURL = "https://example/video"

type mockDownloader struct {
	mock.Mock
}

func (m *mockDownloader) DownloadVideo(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *mockDownloader) DownloadAudio(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *mockDownloader) DownloadWithQualitySelection(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *mockDownloader) DownloadPlaylist(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *mockDownloader) DownloadTrimmed(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func newLocalizer(t *testing.T) *service.Localizer {
	t.Helper()
	l, err := service.NewLocalizer("en")
	require.NoError(t, err)
	return l
}

func newMenu(t *testing.T, input string, d Downloader) (*Menu, *strings.Builder) {
	t.Helper()
	out := &strings.Builder{}
	c := console.New(strings.NewReader(input), out)
	return New(logger.NewTestLogger(), c, newLocalizer(t), d, "mp3"), out
}

func TestMenu_ExitChoice(t *testing.T) {
	d := &mockDownloader{}
	m, out := newMenu(t, "0\n", d)

	require.NoError(t, m.Run(context.Background()))

	expectedMenu := "\n" + strings.Repeat("=", 50) + "\n" +
		"     YOUTUBE VIDEO DOWNLOADER\n" +
		strings.Repeat("=", 50) + "\n" +
		"1. Download Video (Best Quality)\n" +
		"2. Download Audio Only (MP3)\n" +
		"3. Download with Quality Selection\n" +
		"4. Download Playlist\n" +
		"5. Download & Trim Video (Partial)\n" +
		"0. Exit\n" +
		strings.Repeat("=", 50) + "\n" +
		"Select option (0-5): "
	assert.Equal(t, expectedMenu+"\nGoodbye!\n", out.String())
	d.AssertExpectations(t)
}

func TestMenu_InvalidOptionDoesNotAskForURL(t *testing.T) {
	for _, choice := range []string{"6", "-1", "abc", "", "1.0"} {
		t.Run(choice, func(t *testing.T) {
			d := &mockDownloader{}
			m, out := newMenu(t, choice+"\n0\n", d)

			require.NoError(t, m.Run(context.Background()))

			assert.Contains(t, out.String(), "\nInvalid option. Please try again.\n")
			assert.NotContains(t, out.String(), "Enter YouTube URL")
			assert.Equal(t, 2, strings.Count(out.String(), "Select option (0-5): "))
			d.AssertNotCalled(t, "DownloadVideo", mock.Anything, mock.Anything)
		})
	}
}

func TestMenu_EmptyURLRepromptsURLOnly(t *testing.T) {
	d := &mockDownloader{}
	d.On("DownloadPlaylist", mock.Anything, testURL).Return(nil).Once()
	m, out := newMenu(t, "4\n\n  \n"+testURL+"\n\n0\n", d)

	require.NoError(t, m.Run(context.Background()))

	assert.Equal(t, 2, strings.Count(out.String(), "URL cannot be empty!"))
	assert.Equal(t, 3, strings.Count(out.String(), "Enter YouTube URL: "))
	assert.Equal(t, 2, strings.Count(out.String(), "Select option (0-5): "))
	assert.Contains(t, out.String(), "\n"+strings.Repeat("-", 50)+"\nPress Enter to continue...")
	d.AssertExpectations(t)
}

func TestMenu_DispatchesEveryChoice(t *testing.T) {
	methods := map[string]string{
		"1": "DownloadVideo",
		"2": "DownloadAudio",
		"3": "DownloadWithQualitySelection",
		"4": "DownloadPlaylist",
		"5": "DownloadTrimmed",
	}
	for choice, method := range methods {
		t.Run(method, func(t *testing.T) {
			d := &mockDownloader{}
			d.On(method, mock.Anything, testURL).Return(assert.AnError).Once()
			m, _ := newMenu(t, choice+"\n"+testURL+"\n\n0\n", d)

			require.NoError(t, m.Run(context.Background()))
			d.AssertExpectations(t)
		})
	}
}

func TestMenu_InputClosedIsExit(t *testing.T) {
	d := &mockDownloader{}
	m, _ := newMenu(t, "1\n", d)

	assert.NoError(t, m.Run(context.Background()))
	d.AssertNotCalled(t, "DownloadVideo", mock.Anything, mock.Anything)
}

func TestMenu_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, out := newMenu(t, "0\n", &mockDownloader{})

	assert.ErrorIs(t, m.Run(ctx), context.Canceled)
	assert.Empty(t, out.String())
}

type scenario struct {
	engine     *engine.MockEngine
	transcoder *transcoder.MockTranscoder
	out        *strings.Builder
	menu       *Menu
	dir        string
}

func newScenario(t *testing.T, input string) *scenario {
	t.Helper()
	dir := t.TempDir()
	s := &scenario{
		engine:     engine.NewMockEngine(t),
		transcoder: transcoder.NewMockTranscoder(t),
		out:        &strings.Builder{},
		dir:        dir,
	}
	l := logger.NewTestLogger()
	localizer := newLocalizer(t)
	c := console.New(strings.NewReader(input), s.out)
	svc := downloader.NewService(l, s.engine, s.transcoder, c, localizer, downloader.Config{
		OutputDir:    dir,
		ArchivePath:  filepath.Join(dir, "downloaded.txt"),
		MergeFormat:  "mp4",
		AudioCodec:   "mp3",
		AudioQuality: "192",
	})
	s.menu = New(l, c, localizer, svc, "mp3")
	return s
}

func TestScenario_AudioChoice(t *testing.T) {
	s := newScenario(t, "2\n"+testURL+"\n\n0\n")
	var got engine.FetchRequest
	s.engine.EXPECT().Fetch(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req engine.FetchRequest) { got = req }).
		Return(&engine.FetchResult{Title: "Song"}, nil).Once()

	require.NoError(t, s.menu.Run(context.Background()))

	assert.Equal(t, testURL, got.URL)
	assert.Equal(t, "bestaudio/best", got.Format)
	assert.True(t, strings.HasSuffix(got.OutputTemplate, "%(title)s.%(ext)s"))
	require.NotNil(t, got.Options.ExtractAudio)
	assert.Equal(t, "mp3", got.Options.ExtractAudio.Codec)
	assert.Equal(t, "192", got.Options.ExtractAudio.Quality)
}

func TestScenario_TrimChoice(t *testing.T) {
	s := newScenario(t, "5\n"+testURL+"\n1\n2\n\n0\n")
	s.transcoder.EXPECT().IsAvailable().Return(true).Once()
	s.engine.EXPECT().Probe(mock.Anything, testURL).
		Return(&engine.MediaInfo{Title: "Talk", Duration: 600}, nil).Once()
	var got engine.FetchRequest
	s.engine.EXPECT().Fetch(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req engine.FetchRequest) { got = req }).
		Return(&engine.FetchResult{Title: "Talk"}, nil).Once()

	require.NoError(t, s.menu.Run(context.Background()))

	assert.Equal(t, []engine.TimeRange{{Start: 60, End: 120}}, got.Options.Ranges)
	assert.True(t, got.Options.ForceKeyframesAtCuts)
	assert.Equal(t, filepath.Join(s.dir, "%(title)s_trimmed_60_to_120.%(ext)s"), got.OutputTemplate)
}

func TestScenario_QualityChoiceWithoutVideoFormats(t *testing.T) {
	s := newScenario(t, "3\n"+testURL+"\n\n0\n")
	s.engine.EXPECT().Probe(mock.Anything, testURL).Return(&engine.MediaInfo{
		Title: "Podcast",
		Formats: []engine.Format{
			{ID: "140", Extension: "m4a", Resolution: "audio only", VideoCodec: "none"},
		},
	}, nil).Once()

	require.NoError(t, s.menu.Run(context.Background()))

	assert.Contains(t, s.out.String(), "No video formats found!")
	assert.NotContains(t, s.out.String(), "Select quality")
}
