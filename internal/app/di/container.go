package di

import (
	"context"

	"github.com/muratoffalex/ytgrab/internal/cache"
	"github.com/muratoffalex/ytgrab/internal/config"
	"github.com/muratoffalex/ytgrab/internal/console"
	"github.com/muratoffalex/ytgrab/internal/downloader"
	"github.com/muratoffalex/ytgrab/internal/engine"
	"github.com/muratoffalex/ytgrab/internal/logger"
	"github.com/muratoffalex/ytgrab/internal/menu"
	"github.com/muratoffalex/ytgrab/internal/service"
	"github.com/muratoffalex/ytgrab/internal/transcoder"
)

type Container struct {
	Logger     logger.Logger
	Cfg        *config.Config
	Localizer  *service.Localizer
	Cache      cache.Cache
	Engine     engine.Engine
	Transcoder *transcoder.FFmpeg
	Console    *console.Console
	Downloader *downloader.Service
	Menu       *menu.Menu
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logCfg := cfg.Log()
	l := logger.NewLogrusLogger(&logCfg)

	localizer, err := service.NewLocalizer(cfg.Global().InterfaceLanguage)
	if err != nil {
		return nil, err
	}

	engineCfg := cfg.Engine()
	if engineCfg.AutoInstall {
		installCtx, cancel := context.WithTimeout(ctx, engineCfg.InstallTimeout)
		if err := engine.Install(installCtx); err != nil {
			l.WithError(err).Warn("yt-dlp auto install failed, relying on PATH")
		} else {
			l.Info("yt-dlp installed")
		}
		cancel()
	}

	ffmpeg := transcoder.NewFFmpeg(cfg.FFmpeg().Path, l)
	memoryCache := cache.NewMemoryCache()
	terminal := console.NewStd()
	progress := downloader.NewProgressPrinter(terminal, localizer)
	ytdlpEngine := engine.NewYtdlpEngine(l, engine.YtdlpConfig{
		Proxy:          engineCfg.GetProxy(),
		FFmpegLocation: ffmpeg.Location(),
		Progress:       progress.Report,
	})

	container := &Container{
		Logger:     l,
		Cfg:        cfg,
		Localizer:  localizer,
		Cache:      memoryCache,
		Engine:     engine.NewCachedEngine(ytdlpEngine, memoryCache, engineCfg.ProbeCacheTTL, l),
		Transcoder: ffmpeg,
		Console:    terminal,
	}

	dlCfg := cfg.Download()
	audioCfg := cfg.Audio()
	container.Downloader = downloader.NewService(
		l,
		container.Engine,
		container.Transcoder,
		container.Console,
		localizer,
		downloader.Config{
			OutputDir:     dlCfg.Directory,
			ArchivePath:   dlCfg.ArchivePath(),
			MergeFormat:   dlCfg.MergeFormat,
			AudioCodec:    audioCfg.Codec,
			AudioQuality:  audioCfg.Quality,
			MaxFormatRows: cfg.Formats().MaxRows,
		},
	)
	container.Menu = menu.New(l, container.Console, localizer, container.Downloader, audioCfg.Codec)

	l.Info("DI Container created")
	return container, nil
}
