package cleaner

import (
	"context"

	"github.com/dmitrymomot/unicleaner/pkg/document"
	"github.com/dmitrymomot/unicleaner/pkg/inspect"
	"github.com/dmitrymomot/unicleaner/pkg/logger"
)

// InspectLine reports every character of line n (1-based) of path.
func (s *Service) InspectLine(ctx context.Context, path string, n int) (*inspect.LineReport, error) {
	doc, err := s.load(ctx, path)
	if err != nil {
		return nil, err
	}
	report, err := inspect.Line(doc.Text, n)
	if err != nil {
		s.logger.DebugContext(ctx, "line inspection failed", logger.Path(path), logger.Error(err))
		return nil, err
	}
	return report, nil
}

// Analyze summarizes non-ASCII characters and suspicious lines of path.
func (s *Service) Analyze(ctx context.Context, path string, limit int) (*inspect.Summary, error) {
	doc, err := s.load(ctx, path)
	if err != nil {
		return nil, err
	}
	return inspect.Analyze(doc.Text, limit), nil
}

// Scan lists known problem codepoints in path.
func (s *Service) Scan(ctx context.Context, path string) ([]inspect.Finding, error) {
	doc, err := s.load(ctx, path)
	if err != nil {
		return nil, err
	}
	findings := inspect.Scan(doc.Text)
	s.logger.DebugContext(ctx, "scan finished", logger.Path(path), logger.Count(len(findings)))
	return findings, nil
}

func (s *Service) load(ctx context.Context, path string) (*document.Document, error) {
	doc, err := document.Load(ctx, s.store, path, s.loadOpts...)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read document", logger.Path(path), logger.Error(err))
		return nil, err
	}
	return doc, nil
}
