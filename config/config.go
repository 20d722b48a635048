package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported output audio formats. The format is a deployment constant,
// not a per-request choice.
var supportedAudioFormats = map[string]bool{
	"mp3": true,
	"wav": true,
}

type Config struct {
	LogLevel    int    `yaml:"log_level"`
	AudioFormat string `yaml:"audio_format"`

	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Cookies CookiesConfig `yaml:"cookies"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type StorageConfig struct {
	// Directory where produced audio files are stored and served from
	DownloadDir string `yaml:"download_dir"`
}

type CookiesConfig struct {
	// Fixed path of the persisted cookies file, used when a request
	// carries no inline cookie content
	FilePath string `yaml:"file_path"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config *Config

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	// Set defaults if not provided
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	if config.Storage.DownloadDir == "" {
		config.Storage.DownloadDir = "static/downloads"
	}

	if config.Cookies.FilePath == "" {
		config.Cookies.FilePath = "cookies.txt"
	}

	if config.AudioFormat == "" {
		config.AudioFormat = "mp3"
	}

	if !supportedAudioFormats[config.AudioFormat] {
		return nil, fmt.Errorf("unsupported audio format: %s", config.AudioFormat)
	}

	return config, nil
}
