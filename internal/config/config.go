package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	GLOBAL_LANGUAGE          = "global.interface_language"
	DOWNLOAD_DIRECTORY       = "download.directory"
	DOWNLOAD_ARCHIVE_FILE    = "download.archive_file"
	DOWNLOAD_MERGE_FORMAT    = "download.merge_format"
	AUDIO_CODEC              = "audio.codec"
	AUDIO_QUALITY            = "audio.quality"
	FORMATS_MAX_ROWS         = "formats.max_rows"
	ENGINE_AUTO_INSTALL      = "engine.auto_install"
	ENGINE_PROXY             = "engine.proxy"
	ENGINE_PROBE_CACHE_TTL   = "engine.probe_cache_ttl"
	ENGINE_INSTALL_TIMEOUT   = "engine.install_timeout"
	FFMPEG_PATH              = "ffmpeg.path"
	LOGGING_LEVEL            = "logging.level"
	LOGGING_WRITE_IN_FILE    = "logging.write_in_file"
	LOGGING_FILE_PATH        = "logging.file_path"
	envPrefix                = "YTGRAB_"
	envConfigPath            = "YTGRAB_CONFIG"
	defaultDownloadDirectory = "downloads"
)

type Config struct {
	k *koanf.Koanf
}

// Load merges defaults, the first config file found and YTGRAB_* environment
// variables. Nested keys are addressed with a double underscore in env names,
// e.g. YTGRAB_DOWNLOAD__ARCHIVE_FILE.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		GLOBAL_LANGUAGE:        "en",
		DOWNLOAD_DIRECTORY:     getDefaultDownloadDirectory(),
		DOWNLOAD_ARCHIVE_FILE:  "downloaded.txt",
		DOWNLOAD_MERGE_FORMAT:  "mp4",
		AUDIO_CODEC:            "mp3",
		AUDIO_QUALITY:          "192",
		FORMATS_MAX_ROWS:       20,
		ENGINE_AUTO_INSTALL:    false,
		ENGINE_PROXY:           "",
		ENGINE_PROBE_CACHE_TTL: 5 * time.Minute,
		ENGINE_INSTALL_TIMEOUT: 60 * time.Second,
		FFMPEG_PATH:            "ffmpeg",
		LOGGING_LEVEL:          "warn",
		LOGGING_WRITE_IN_FILE:  false,
		LOGGING_FILE_PATH:      "ytgrab.log",
	}
	k.Load(confmap.Provider(defaults, "."), nil)

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("error loading config %s: %v", path, err)
			}
			break
		}
	}

	k.Load(env.Provider(envPrefix, ".", func(s string) string {
		if s == envConfigPath {
			return ""
		}
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__", ".",
		)
	}), nil)

	if k.String(DOWNLOAD_DIRECTORY) == "" {
		return nil, fmt.Errorf("download directory is required")
	}
	if k.Int(FORMATS_MAX_ROWS) <= 0 {
		return nil, fmt.Errorf("formats.max_rows must be positive, got %d", k.Int(FORMATS_MAX_ROWS))
	}

	return &Config{k: k}, nil
}

func (c *Config) Download() DownloadConfig {
	return DownloadConfig{
		Directory:   c.k.String(DOWNLOAD_DIRECTORY),
		ArchiveFile: c.k.String(DOWNLOAD_ARCHIVE_FILE),
		MergeFormat: c.k.String(DOWNLOAD_MERGE_FORMAT),
	}
}

func (c *Config) Audio() AudioConfig {
	return AudioConfig{
		Codec:   c.k.String(AUDIO_CODEC),
		Quality: c.k.String(AUDIO_QUALITY),
	}
}

func (c *Config) Formats() FormatsConfig {
	return FormatsConfig{
		MaxRows: c.k.Int(FORMATS_MAX_ROWS),
	}
}

func (c *Config) Engine() EngineConfig {
	return EngineConfig{
		AutoInstall:    c.k.Bool(ENGINE_AUTO_INSTALL),
		proxy:          c.k.String(ENGINE_PROXY),
		ProbeCacheTTL:  c.k.Duration(ENGINE_PROBE_CACHE_TTL),
		InstallTimeout: c.k.Duration(ENGINE_INSTALL_TIMEOUT),
	}
}

func (c *Config) FFmpeg() FFmpegConfig {
	return FFmpegConfig{
		Path: c.k.String(FFMPEG_PATH),
	}
}

func (c *Config) Log() LoggingConfig {
	return LoggingConfig{
		LogLevel:    c.k.String(LOGGING_LEVEL),
		WriteInFile: c.k.Bool(LOGGING_WRITE_IN_FILE),
		FilePath:    c.k.String(LOGGING_FILE_PATH),
	}
}

func (c *Config) Global() GlobalConfig {
	return GlobalConfig{
		InterfaceLanguage: c.k.String(GLOBAL_LANGUAGE),
	}
}

// getDefaultDownloadDirectory places downloads beside the running binary.
func getDefaultDownloadDirectory() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultDownloadDirectory
	}
	return filepath.Join(filepath.Dir(exe), defaultDownloadDirectory)
}

func getConfigPaths() []string {
	if path := os.Getenv(envConfigPath); path != "" {
		return []string{path}
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		"ytgrab.toml",
		"config.toml",
		filepath.Join(xdgConfig, "ytgrab", "config.toml"),
		"/etc/ytgrab/config.toml",
	}
}
