package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`
	MaxFileSize int64  `envconfig:"MAX_FILE_SIZE" default:"33554432"`

	// SuppressedWarning is filtered out of the log stream; PDF
	// extraction logs it for nearly every page of these reports.
	SuppressedWarning string `envconfig:"SUPPRESSED_WARNING" default:"CropBox missing from /Page, defaulting to MediaBox"`
}

func LoadConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return &cfg
}
