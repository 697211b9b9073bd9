package downloader

import (
	"fmt"
	"sync"
	"time"

	"github.com/muratoffalex/ytgrab/internal/console"
	"github.com/muratoffalex/ytgrab/internal/engine"
	"github.com/muratoffalex/ytgrab/internal/formats"
	"github.com/muratoffalex/ytgrab/internal/service"
)

const unknownETA = "--:--"

// ProgressPrinter renders engine transfer progress as one console line that
// is rewritten in place and closed when a transfer finishes.
type ProgressPrinter struct {
	mu        sync.Mutex
	console   *console.Console
	localizer *service.Localizer
}

func NewProgressPrinter(c *console.Console, localizer *service.Localizer) *ProgressPrinter {
	return &ProgressPrinter{console: c, localizer: localizer}
}

func (p *ProgressPrinter) Report(update engine.Progress) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := p.localizer.Localize("download.progress", map[string]any{
		"Percent": fmt.Sprintf("%5.1f%%", update.Percent),
		"Size":    formats.SizeString(update.TotalBytes),
		"ETA":     etaString(update.ETA),
	})
	if update.Title != "" {
		line += "  " + update.Title
	}
	p.console.Status(line)
	if update.Finished {
		p.console.EndStatus()
	}
}

func etaString(eta time.Duration) string {
	if eta <= 0 {
		return unknownETA
	}
	secs := int(eta.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
