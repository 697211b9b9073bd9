package logger

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestLogger_DerivedLoggersShareJournal(t *testing.T) {
	l := NewTestLogger()
	op := l.WithFields(Fields{FieldOp: "video", FieldURL: "https://example/video"})

	op.Info("Operation started")
	op.WithError(errors.New("boom")).Error("Operation failed")
	l.Debug("untagged")

	require.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"Operation failed"}, l.Messages("error"))
	assert.True(t, l.Has("debug", "untagged"))
	assert.False(t, l.Has("info", "untagged"))

	entry, ok := l.Find("Operation failed")
	require.True(t, ok)
	assert.Equal(t, "video", entry.Fields[FieldOp])
	assert.EqualError(t, entry.Fields[FieldError].(error), "boom")

	l.Reset()
	assert.Zero(t, l.Len())
	_, ok = l.Find("Operation started")
	assert.False(t, ok)
}

func TestTestLogger_FieldsDoNotLeakBetweenDerivations(t *testing.T) {
	l := NewTestLogger()
	playlist := l.WithField(FieldOp, "playlist")

	playlist.WithField(FieldURL, "https://example/list").Warn("Skipped item")
	playlist.Info("Done")

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "https://example/list", entries[0].Fields[FieldURL])
	assert.NotContains(t, entries[1].Fields, FieldURL)
	assert.Equal(t, "playlist", entries[1].Fields[FieldOp])
}

func TestTestLogger_Filter(t *testing.T) {
	l := NewTestLogger()
	l.WithField(FieldOp, "audio").Info("a")
	l.WithField(FieldOp, "video").Info("b")
	l.WithField(FieldOp, "audio").Warn("c")

	audio := l.Filter(func(e TestLogEntry) bool { return e.Fields[FieldOp] == "audio" })
	require.Len(t, audio, 2)
	assert.Equal(t, "a", audio[0].Message)
	assert.Equal(t, "c", audio[1].Message)
	assert.Empty(t, l.Messages("fatal"))
}

func TestTestLogger_ConcurrentWrites(t *testing.T) {
	l := NewTestLogger()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				l.WithField(FieldOp, "worker").Debug("tick")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, l.Len())
}
