// Package menu runs the interactive loop that dispatches menu choices to the
// download operations.
package menu

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/muratoffalex/ytgrab/internal/console"
	"github.com/muratoffalex/ytgrab/internal/logger"
	"github.com/muratoffalex/ytgrab/internal/service"
)

const (
	ChoiceExit = "0"
	frameWidth = 50
	titleInset = "     "
)

// Downloader is the set of operations the menu dispatches to.
type Downloader interface {
	DownloadVideo(ctx context.Context, url string) error
	DownloadAudio(ctx context.Context, url string) error
	DownloadWithQualitySelection(ctx context.Context, url string) error
	DownloadPlaylist(ctx context.Context, url string) error
	DownloadTrimmed(ctx context.Context, url string) error
}

type action struct {
	key     string
	labelID string
	run     func(ctx context.Context, url string) error
}

type Menu struct {
	logger     logger.Logger
	console    *console.Console
	localizer  *service.Localizer
	actions    []action
	audioCodec string
}

func New(l logger.Logger, c *console.Console, localizer *service.Localizer, d Downloader, audioCodec string) *Menu {
	return &Menu{
		logger:    l,
		console:   c,
		localizer: localizer,
		actions: []action{
			{key: "1", labelID: "menu.video", run: d.DownloadVideo},
			{key: "2", labelID: "menu.audio", run: d.DownloadAudio},
			{key: "3", labelID: "menu.quality", run: d.DownloadWithQualitySelection},
			{key: "4", labelID: "menu.playlist", run: d.DownloadPlaylist},
			{key: "5", labelID: "menu.trim", run: d.DownloadTrimmed},
		},
		audioCodec: strings.ToUpper(audioCodec),
	}
}

// Run loops until the exit choice is entered or input ends. Both count as an
// explicit exit and return nil.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.show()
		choice, err := m.console.Prompt(m.localizer.T("menu.prompt"))
		if err != nil {
			return m.stop(err)
		}

		if choice == ChoiceExit {
			m.console.Println()
			m.console.Println(m.localizer.T("menu.goodbye"))
			return nil
		}

		act, ok := m.lookup(choice)
		if !ok {
			m.logger.WithField("choice", choice).Debug("Invalid menu option")
			m.console.Println()
			m.console.Println(m.localizer.T("menu.invalid"))
			continue
		}

		url, err := m.readURL()
		if err != nil {
			return m.stop(err)
		}

		if err := act.run(ctx, url); err != nil {
			if errors.Is(err, io.EOF) {
				return m.stop(err)
			}
			m.logger.WithError(err).WithField("choice", choice).Debug("Operation returned failure")
		}

		m.console.Println()
		m.console.Rule("-", frameWidth)
		if _, err := m.console.Prompt(m.localizer.T("menu.continue")); err != nil {
			return m.stop(err)
		}
	}
}

func (m *Menu) show() {
	m.console.Println()
	m.console.Rule("=", frameWidth)
	m.console.Println(titleInset + m.localizer.T("menu.title"))
	m.console.Rule("=", frameWidth)
	for _, act := range m.actions {
		m.console.Printf("%s. %s\n", act.key, m.localizer.Localize(act.labelID, map[string]any{"Codec": m.audioCodec}))
	}
	m.console.Printf("%s. %s\n", ChoiceExit, m.localizer.T("menu.exit"))
	m.console.Rule("=", frameWidth)
}

func (m *Menu) lookup(choice string) (action, bool) {
	for _, act := range m.actions {
		if act.key == choice {
			return act, true
		}
	}
	return action{}, false
}

// readURL prompts until a non-empty URL is entered.
func (m *Menu) readURL() (string, error) {
	for {
		m.console.Println()
		url, err := m.console.Prompt(m.localizer.T("menu.urlPrompt"))
		if err != nil {
			return "", err
		}
		if url != "" {
			return url, nil
		}
		m.console.Println(m.localizer.T("menu.urlEmpty"))
	}
}

func (m *Menu) stop(err error) error {
	if errors.Is(err, io.EOF) {
		m.logger.Debug("Input closed, leaving menu")
		return nil
	}
	return err
}
