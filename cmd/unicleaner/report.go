package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/dmitrymomot/unicleaner/pkg/inspect"
	"github.com/dmitrymomot/unicleaner/svc/cleaner"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResult(w io.Writer, res *cleaner.Result) {
	r := res.Report
	fmt.Fprintf(w, "Cleaned %s\n", res.Path)
	fmt.Fprintf(w, "  original length: %s characters (%s)\n", humanize.Comma(int64(r.OriginalLength)), humanize.Bytes(uint64(r.OriginalBytes)))
	fmt.Fprintf(w, "  final length:    %s characters (%s)\n", humanize.Comma(int64(r.FinalLength)), humanize.Bytes(uint64(r.FinalBytes)))
	for _, rr := range r.Rules {
		if rr.Count > 0 {
			fmt.Fprintf(w, "  %s: %s\n", rr.Name, humanize.Comma(int64(rr.Count)))
		}
	}
	fmt.Fprintf(w, "  total replacements: %s\n", humanize.Comma(int64(r.Total)))

	switch {
	case res.Written:
		fmt.Fprintf(w, "  saved: %s\n", res.Path)
	case res.DryRun && r.Changed():
		fmt.Fprintln(w, "  dry run: file not written")
	default:
		fmt.Fprintln(w, "  no changes: file not written")
	}
	fmt.Fprintf(w, "  blake3: %s -> %s\n", short(res.ChecksumBefore), short(res.ChecksumAfter))
}

func printLine(w io.Writer, r *inspect.LineReport) {
	fmt.Fprintf(w, "Line %d: %s\n", r.Number, strconv.Quote(r.Text))
	fmt.Fprintf(w, "Length: %d characters\n", r.Length)
	fmt.Fprintln(w, "\nCharacters:")
	for _, c := range r.Chars {
		fmt.Fprintf(w, "  %d: %s (%d, %s)\n", c.Position, quoteChar(c.Codepoint), c.Codepoint, c.Hex)
	}

	problems := r.Problematic()
	if len(problems) == 0 {
		fmt.Fprintf(w, "\nNo problematic characters on line %d\n", r.Number)
		return
	}
	fmt.Fprintln(w, "\nProblematic characters:")
	for _, c := range problems {
		fmt.Fprintf(w, "  position %d: %s (%d, %s)\n", c.Position, quoteChar(c.Codepoint), c.Codepoint, c.Hex)
	}
}

func printSummary(w io.Writer, path string, s *inspect.Summary) {
	fmt.Fprintf(w, "Analysis of %s\n", path)
	fmt.Fprintf(w, "  lines:      %s\n", humanize.Comma(int64(s.Lines)))
	fmt.Fprintf(w, "  characters: %s\n", humanize.Comma(int64(s.Characters)))
	fmt.Fprintf(w, "  size:       %s\n", humanize.Bytes(uint64(s.Bytes)))
	if !s.ValidUTF8 {
		fmt.Fprintln(w, "  warning: document is not valid UTF-8")
	}

	if s.NonASCII == 0 {
		fmt.Fprintln(w, "\nNo non-ASCII characters found")
	} else {
		fmt.Fprintf(w, "\nNon-ASCII characters: %s\n", humanize.Comma(int64(s.NonASCII)))
		for _, c := range s.Histogram {
			fmt.Fprintf(w, "  %s %s: %s\n", quoteChar(c.Codepoint), c.Hex, humanize.Comma(int64(c.Count)))
		}
		fmt.Fprintf(w, "\nFirst %d occurrences:\n", len(s.First))
		for _, o := range s.First {
			fmt.Fprintf(w, "  line %d, position %d: %s (%s)\n", o.Line, o.Position, quoteChar(o.Codepoint), o.Hex)
		}
		if s.Truncated() {
			fmt.Fprintf(w, "  ... and %s more\n", humanize.Comma(int64(s.NonASCII-len(s.First))))
		}
	}

	if len(s.Suspicious) > 0 {
		fmt.Fprintln(w, "\nSuspicious lines:")
		for _, l := range s.Suspicious {
			if l.Reason != "" {
				fmt.Fprintf(w, "  line %d (%s): %s\n", l.Number, l.Reason, l.Content)
				continue
			}
			fmt.Fprintf(w, "  line %d: %s\n", l.Number, l.Content)
		}
	}
}

func printFindings(w io.Writer, path string, findings []inspect.Finding) {
	if len(findings) == 0 {
		fmt.Fprintf(w, "No problematic characters found in %s\n", path)
		return
	}
	fmt.Fprintf(w, "%s problematic characters in %s\n", humanize.Comma(int64(len(findings))), path)
	for _, f := range findings {
		fmt.Fprintf(w, "  line %d, position %d: %s %s (%s)\n", f.Line, f.Position, quoteChar(f.Codepoint), f.Hex, f.Name)
	}
}

func quoteChar(r rune) string {
	return strconv.QuoteRuneToASCII(r)
}

func short(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
