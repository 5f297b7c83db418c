package main

import (
	"time"

	"github.com/dmitrymomot/unicleaner/pkg/document"
)

// Config is read from the environment (and optional .env files).
type Config struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Target      string `env:"UNICLEANER_TARGET" envDefault:"src/index-site.js"`
	AtomicWrite bool   `env:"UNICLEANER_ATOMIC_WRITE" envDefault:"true"`
	StrictUTF8  bool   `env:"UNICLEANER_STRICT_UTF8" envDefault:"false"`

	S3 S3Config `envPrefix:"UNICLEANER_S3_"`
}

// S3Config configures access to documents named s3://bucket/key.
type S3Config struct {
	Bucket         string        `env:"BUCKET"`
	Region         string        `env:"REGION" envDefault:"us-east-1"`
	Endpoint       string        `env:"ENDPOINT"`
	AccessKeyID    string        `env:"ACCESS_KEY_ID"`
	SecretKey      string        `env:"SECRET_ACCESS_KEY"`
	ForcePathStyle bool          `env:"FORCE_PATH_STYLE" envDefault:"false"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

func (c S3Config) store() document.S3Config {
	return document.S3Config{
		Bucket:         c.Bucket,
		Region:         c.Region,
		AccessKeyID:    c.AccessKeyID,
		SecretKey:      c.SecretKey,
		Endpoint:       c.Endpoint,
		ForcePathStyle: c.ForcePathStyle,
	}
}
