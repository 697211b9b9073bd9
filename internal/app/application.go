package app

import (
	"context"

	"github.com/muratoffalex/ytgrab/internal/app/di"
	"github.com/muratoffalex/ytgrab/internal/config"
	"github.com/muratoffalex/ytgrab/internal/console"
	"github.com/muratoffalex/ytgrab/internal/logger"
	"github.com/muratoffalex/ytgrab/internal/service"
	"github.com/muratoffalex/ytgrab/internal/transcoder"
)

// Runner is the interactive loop started after the prerequisite report.
type Runner interface {
	Run(ctx context.Context) error
}

// OutputPreparer creates the download directory.
type OutputPreparer interface {
	EnsureOutputDir() error
}

type Application struct {
	Logger     logger.Logger
	console    *console.Console
	localizer  *service.Localizer
	transcoder transcoder.Transcoder
	output     OutputPreparer
	runner     Runner
	ctx        context.Context
	cancel     context.CancelFunc
}

func New() (*Application, error) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg, err := config.Load()
	if err != nil {
		cancel()
		return nil, err
	}

	di, err := di.NewContainer(ctx, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	return &Application{
		Logger:     di.Logger,
		console:    di.Console,
		localizer:  di.Localizer,
		transcoder: di.Transcoder,
		output:     di.Downloader,
		runner:     di.Menu,
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// Start prints the prerequisite report, prepares the output directory and
// runs the menu until the user exits.
func (a *Application) Start() error {
	defer a.cancel()
	a.Logger.Info("Starting application")

	a.checkPrerequisites()
	if err := a.output.EnsureOutputDir(); err != nil {
		return err
	}

	if err := a.runner.Run(a.ctx); err != nil {
		return err
	}
	a.Logger.Info("Application stopped")
	return nil
}

func (a *Application) checkPrerequisites() {
	a.console.Println()
	a.console.Println(a.localizer.T("app.title"))
	a.console.Println(a.localizer.T("app.checking"))

	if !a.transcoder.IsAvailable() {
		a.Logger.WithError(transcoder.ErrFFmpegMissing).Warn("Trimmed downloads are unavailable")
		a.console.Warning(a.localizer.T("app.ffmpegMissing"))
		a.console.Println(a.localizer.T("app.ffmpegMissingImpact"))
		a.console.Println(a.localizer.T("app.ffmpegMissingInstall"))
		a.console.Println(a.localizer.T("app.ffmpegDownloadFrom"))
		return
	}
	a.console.Check(a.localizer.T("app.ffmpegFound"))
}
