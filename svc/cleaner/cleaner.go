package cleaner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/unicleaner/pkg/document"
	"github.com/dmitrymomot/unicleaner/pkg/logger"
	"github.com/dmitrymomot/unicleaner/pkg/sanitizer"
)

// Service runs sanitizer rules against documents held in a store.
type Service struct {
	store    document.Store
	logger   *slog.Logger
	loadOpts []document.LoadOption
	now      func() time.Time

	beforeWrite func(ctx context.Context, res *Result) error
	afterClean  func(ctx context.Context, res *Result)
}

type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStrictUTF8 makes every read reject invalid UTF-8.
func WithStrictUTF8(strict bool) Option {
	return func(s *Service) {
		if strict {
			s.loadOpts = append(s.loadOpts, document.WithStrictUTF8())
		}
	}
}

// WithClock overrides the time source used for run durations.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBeforeWrite sets a hook that runs after the rules and before the
// document is written. Returning an error aborts the write.
func WithBeforeWrite(fn func(context.Context, *Result) error) Option {
	return func(s *Service) { s.beforeWrite = fn }
}

// WithAfterClean sets a hook that runs after every successful Clean.
func WithAfterClean(fn func(context.Context, *Result)) Option {
	return func(s *Service) { s.afterClean = fn }
}

// New creates a cleaner over store. The logger discards by default.
func New(store document.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	s := &Service{
		store:  store,
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("cleaner"))
	return s, nil
}

// CleanOptions controls a single Clean call.
type CleanOptions struct {
	// DryRun computes the report without writing the document.
	DryRun bool
}

// Result describes one Clean run.
type Result struct {
	RunID          uuid.UUID        `json:"run_id"`
	Path           string           `json:"path"`
	Report         sanitizer.Report `json:"report"`
	ChecksumBefore string           `json:"checksum_before"`
	ChecksumAfter  string           `json:"checksum_after"`
	Written        bool             `json:"written"`
	DryRun         bool             `json:"dry_run"`
	Duration       time.Duration    `json:"duration"`
}

// Clean loads path, applies rules in order and saves the result.
// The document is left untouched on any error, in dry-run mode, and when no
// rule matched.
func (s *Service) Clean(ctx context.Context, path string, rules []sanitizer.Rule, opts CleanOptions) (*Result, error) {
	start := s.now()
	res := &Result{RunID: uuid.New(), Path: path, DryRun: opts.DryRun}
	log := s.logger.With(logger.RunID(res.RunID), logger.Path(path))

	log.InfoContext(ctx, "cleaning document", slog.Int("rules", len(rules)), slog.Bool("dry_run", opts.DryRun))

	doc, err := document.Load(ctx, s.store, path, s.loadOpts...)
	if err != nil {
		log.ErrorContext(ctx, "failed to read document", logger.Error(err))
		return nil, err
	}

	text, report := sanitizer.Run(doc.Text, rules...)
	res.Report = report
	res.ChecksumBefore = doc.Checksum()
	res.ChecksumAfter = document.Checksum(text)

	for _, r := range report.Rules {
		log.DebugContext(ctx, "rule applied", logger.Rule(r.Name), logger.Count(r.Count))
	}

	if err := ctx.Err(); err != nil {
		log.WarnContext(ctx, "clean canceled before write", logger.Error(err))
		return nil, err
	}

	if report.Changed() && !opts.DryRun {
		if s.beforeWrite != nil {
			if err := s.beforeWrite(ctx, res); err != nil {
				log.WarnContext(ctx, "write rejected by hook", logger.Error(err))
				return nil, fmt.Errorf("%w: %v", ErrAborted, err)
			}
		}
		doc.Text = text
		if err := document.Save(ctx, s.store, doc); err != nil {
			log.ErrorContext(ctx, "failed to write document", logger.Error(err))
			return nil, err
		}
		res.Written = true
	}

	res.Duration = s.now().Sub(start)
	log.InfoContext(ctx, "document cleaned",
		logger.Count(report.Total),
		slog.Int("original_length", report.OriginalLength),
		slog.Int("final_length", report.FinalLength),
		slog.Bool("written", res.Written),
		logger.Duration(res.Duration),
	)

	if s.afterClean != nil {
		s.afterClean(ctx, res)
	}
	return res, nil
}
