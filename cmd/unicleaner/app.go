package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/unicleaner/pkg/document"
	"github.com/dmitrymomot/unicleaner/pkg/environment"
	"github.com/dmitrymomot/unicleaner/pkg/logger"
	"github.com/dmitrymomot/unicleaner/svc/cleaner"
)

const serviceName = "unicleaner"

// app holds what every command needs. Commands receive it through kong bindings.
type app struct {
	cfg Config
	env environment.Environment
	log *slog.Logger
	out io.Writer

	newS3 func(ctx context.Context, cfg S3Config) (document.Store, error)
}

func newApp(cfg Config, out io.Writer, errOut io.Writer) (*app, error) {
	env := environment.Parse(cfg.AppEnv)

	opts := []logger.Option{
		logger.WithEnvironment(env, serviceName),
		logger.WithOutput(errOut),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return &app{
		cfg:   cfg,
		env:   env,
		log:   logger.New(opts...),
		out:   out,
		newS3: newS3Store,
	}, nil
}

func newS3Store(ctx context.Context, cfg S3Config) (document.Store, error) {
	return document.NewS3Store(ctx, cfg.store(), document.WithS3Timeout(cfg.Timeout))
}

// withEnv attaches the environment so that log records carry it.
func (a *app) withEnv(ctx context.Context) context.Context {
	return environment.WithContext(ctx, a.env)
}

// target returns path, or the configured default document when path is empty.
func (a *app) target(path string) string {
	if path != "" {
		return path
	}
	return a.cfg.Target
}

// store picks the S3 store for s3:// names and the local filesystem otherwise.
func (a *app) store(ctx context.Context, path string) (document.Store, error) {
	if document.IsS3Name(path) {
		return a.newS3(ctx, a.cfg.S3)
	}
	return document.NewLocalStore(document.WithAtomicWrite(a.cfg.AtomicWrite)), nil
}

func (a *app) cleaner(ctx context.Context, path string) (*cleaner.Service, error) {
	store, err := a.store(ctx, path)
	if err != nil {
		return nil, err
	}
	return cleaner.New(store,
		cleaner.WithLogger(a.log),
		cleaner.WithStrictUTF8(a.cfg.StrictUTF8),
	)
}
