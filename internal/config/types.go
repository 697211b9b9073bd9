package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

type GlobalConfig struct {
	InterfaceLanguage string `koanf:"interface_language"`
}

type DownloadConfig struct {
	Directory   string `koanf:"directory"`
	ArchiveFile string `koanf:"archive_file"`
	MergeFormat string `koanf:"merge_format"`
}

// ArchivePath resolves the archive file against the download directory
// unless it is already absolute.
func (c DownloadConfig) ArchivePath() string {
	if c.ArchiveFile == "" || filepath.IsAbs(c.ArchiveFile) {
		return c.ArchiveFile
	}
	return filepath.Join(c.Directory, c.ArchiveFile)
}

type AudioConfig struct {
	Codec   string `koanf:"codec"`
	Quality string `koanf:"quality"`
}

type FormatsConfig struct {
	MaxRows int `koanf:"max_rows"`
}

type EngineConfig struct {
	AutoInstall    bool          `koanf:"auto_install"`
	proxy          string        `koanf:"proxy"`
	ProbeCacheTTL  time.Duration `koanf:"probe_cache_ttl"`
	InstallTimeout time.Duration `koanf:"install_timeout"`
}

func (c EngineConfig) GetProxy() string {
	if c.proxy != "" {
		return c.proxy
	}
	if proxyURL := os.Getenv("HTTPS_PROXY"); proxyURL != "" {
		return proxyURL
	}
	if proxyURL := os.Getenv("https_proxy"); proxyURL != "" {
		return proxyURL
	}
	if proxyURL := os.Getenv("HTTP_PROXY"); proxyURL != "" {
		return proxyURL
	}
	if proxyURL := os.Getenv("http_proxy"); proxyURL != "" {
		return proxyURL
	}
	return ""
}

type FFmpegConfig struct {
	Path string `koanf:"path"`
}

type LoggingConfig struct {
	LogLevel    string `koanf:"level"`
	WriteInFile bool   `koanf:"write_in_file"`
	FilePath    string `koanf:"file_path"`
}

func (c LoggingConfig) Level() string {
	return strings.ToLower(c.LogLevel)
}
