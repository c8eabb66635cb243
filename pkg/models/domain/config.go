package domain

import "time"

type Destination string

const (
	DestinationFile   Destination = "file"
	DestinationStdout Destination = "stdout"
	DestinationS3     Destination = "s3"
)

// Config is built once per process and handed to every component.
type Config struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url" validate:"required,url"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gte=0"`
	TargetDate        string        `mapstructure:"target_date" validate:"omitempty,len=8,numeric"`
	IncludeRankChange bool          `mapstructure:"include_rank_change"`
	Schedule          string        `mapstructure:"schedule"`
	Output            OutputConfig  `mapstructure:"output"`
	Server            ServerConfig  `mapstructure:"server"`
	Log               LogConfig     `mapstructure:"log"`
}

type OutputConfig struct {
	Destination Destination `mapstructure:"destination" validate:"required,oneof=file stdout s3"`
	Path        string      `mapstructure:"path" validate:"required_if=Destination file"`
	Bucket      string      `mapstructure:"bucket" validate:"required_if=Destination s3"`
	Key         string      `mapstructure:"key"`
	Profile     string      `mapstructure:"profile"`
	Region      string      `mapstructure:"region"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `mapstructure:"file"`
	JSON  bool   `mapstructure:"json"`
}
