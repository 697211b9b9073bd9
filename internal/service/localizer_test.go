package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizer_English(t *testing.T) {
	l, err := NewLocalizer("en")
	require.NoError(t, err)

	assert.Equal(t, "Select option (0-5): ", l.T("menu.prompt"))
	assert.Equal(t, "No video formats found!", l.T("download.quality.noFormats"))
	assert.Equal(t, "Select quality (1-20), or 0 to cancel: ",
		l.Localize("download.quality.prompt", map[string]any{"Max": 20}))
	assert.Equal(t, "Downloading video (best quality): https://example/video?a=1&b=2",
		l.Localize("download.video.start", map[string]any{"URL": "https://example/video?a=1&b=2"}))
}

func TestLocalizer_Russian(t *testing.T) {
	l, err := NewLocalizer("ru")
	require.NoError(t, err)

	assert.Equal(t, "Видеоформаты не найдены!", l.T("download.quality.noFormats"))
}

func TestLocalizer_UnknownMessageReturnsID(t *testing.T) {
	l, err := NewLocalizer("en")
	require.NoError(t, err)

	assert.Equal(t, "menu.missing", l.T("menu.missing"))
}

func TestLocalizer_FallsBackToEnglish(t *testing.T) {
	l, err := NewLocalizer("de")
	require.NoError(t, err)

	assert.Equal(t, "Goodbye!", l.T("menu.goodbye"))
}

func TestNewLocalizer_InvalidLanguage(t *testing.T) {
	_, err := NewLocalizer("not a language tag")
	assert.Error(t, err)
}
