package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/unicleaner/pkg/inspect"
	"github.com/dmitrymomot/unicleaner/pkg/logger"
	"github.com/dmitrymomot/unicleaner/pkg/profile"
	"github.com/dmitrymomot/unicleaner/pkg/sanitizer"
	"github.com/dmitrymomot/unicleaner/svc/cleaner"
)

// CleanCmd applies presets and profile rules to a document.
type CleanCmd struct {
	Path    string   `arg:"" optional:"" help:"Document to clean, a local path or s3://bucket/key. Defaults to UNICLEANER_TARGET."`
	Presets []string `name:"preset" short:"p" sep:"," placeholder:"NAME" help:"Preset to apply; repeat or comma-separate, applied in order. Defaults to \"specific\"."`
	Profile string   `short:"f" type:"existingfile" help:"YAML rule profile; its rules run after the presets."`
	DryRun  bool     `name:"dry-run" short:"n" help:"Report what would change without writing."`
	JSON    bool     `name:"json" help:"Print the result as JSON."`
}

func (c *CleanCmd) Run(ctx context.Context, a *app) error {
	path := c.Path
	var rules []sanitizer.Rule

	presets := c.Presets
	if len(presets) == 0 && c.Profile == "" {
		presets = []string{sanitizer.PresetSpecific}
	}
	for _, name := range presets {
		r, err := sanitizer.Preset(name)
		if err != nil {
			return err
		}
		a.log.DebugContext(ctx, "preset selected", logger.Preset(name), slog.Int("rules", len(r)))
		rules = append(rules, r...)
	}

	if c.Profile != "" {
		p, err := profile.LoadFile(c.Profile)
		if err != nil {
			return err
		}
		r, err := p.Build()
		if err != nil {
			return err
		}
		rules = append(rules, r...)
		if path == "" {
			path = p.Path
		}
	}

	return a.clean(ctx, a.target(path), rules, c.DryRun, c.JSON)
}

// CRLFCmd removes carriage returns.
type CRLFCmd struct {
	Path   string `arg:"" optional:"" help:"Document to fix. Defaults to UNICLEANER_TARGET."`
	DryRun bool   `name:"dry-run" short:"n" help:"Report what would change without writing."`
	JSON   bool   `name:"json" help:"Print the result as JSON."`
}

func (c *CRLFCmd) Run(ctx context.Context, a *app) error {
	return a.clean(ctx, a.target(c.Path), sanitizer.MustPreset(sanitizer.PresetCRLF), c.DryRun, c.JSON)
}

func (a *app) clean(ctx context.Context, path string, rules []sanitizer.Rule, dryRun, asJSON bool) error {
	ctx = a.withEnv(ctx)
	svc, err := a.cleaner(ctx, path)
	if err != nil {
		return err
	}
	res, err := svc.Clean(ctx, path, rules, cleaner.CleanOptions{DryRun: dryRun})
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(a.out, res)
	}
	printResult(a.out, res)
	return nil
}

// InspectLineCmd prints every character of one line.
type InspectLineCmd struct {
	Path string `arg:"" optional:"" help:"Document to inspect. Defaults to UNICLEANER_TARGET."`
	Line int    `short:"l" required:"" help:"Line number, starting at 1."`
	JSON bool   `name:"json" help:"Print the report as JSON."`
}

func (c *InspectLineCmd) Run(ctx context.Context, a *app) error {
	ctx = a.withEnv(ctx)
	path := a.target(c.Path)
	svc, err := a.cleaner(ctx, path)
	if err != nil {
		return err
	}
	report, err := svc.InspectLine(ctx, path, c.Line)
	if err != nil {
		return err
	}
	if c.JSON {
		return writeJSON(a.out, report)
	}
	printLine(a.out, report)
	return nil
}

// AnalyzeCmd summarizes non-ASCII characters and suspicious lines.
type AnalyzeCmd struct {
	Path  string `arg:"" optional:"" help:"Document to analyze. Defaults to UNICLEANER_TARGET."`
	Limit int    `short:"l" default:"${analyze_limit}" help:"Number of occurrences to list."`
	JSON  bool   `name:"json" help:"Print the summary as JSON."`
}

func (c *AnalyzeCmd) Run(ctx context.Context, a *app) error {
	ctx = a.withEnv(ctx)
	path := a.target(c.Path)
	svc, err := a.cleaner(ctx, path)
	if err != nil {
		return err
	}
	summary, err := svc.Analyze(ctx, path, c.Limit)
	if err != nil {
		return err
	}
	if c.JSON {
		return writeJSON(a.out, summary)
	}
	printSummary(a.out, path, summary)
	return nil
}

// ScanCmd lists codepoints known to break script parsing.
type ScanCmd struct {
	Path string `arg:"" optional:"" help:"Document to scan. Defaults to UNICLEANER_TARGET."`
	JSON bool   `name:"json" help:"Print the findings as JSON."`
}

func (c *ScanCmd) Run(ctx context.Context, a *app) error {
	ctx = a.withEnv(ctx)
	path := a.target(c.Path)
	svc, err := a.cleaner(ctx, path)
	if err != nil {
		return err
	}
	findings, err := svc.Scan(ctx, path)
	if err != nil {
		return err
	}
	if c.JSON {
		if findings == nil {
			findings = []inspect.Finding{}
		}
		return writeJSON(a.out, findings)
	}
	printFindings(a.out, path, findings)
	return nil
}

// PresetsCmd lists the built-in presets.
type PresetsCmd struct{}

func (c *PresetsCmd) Run(a *app) error {
	for _, name := range sanitizer.PresetNames() {
		fmt.Fprintf(a.out, "%-12s %s\n", name, sanitizer.PresetDescription(name))
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.out, "unicleaner version %s\n", version)
	return nil
}
