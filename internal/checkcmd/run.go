package checkcmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/go-digitaltwin/go-named/capcheck"
)

// ErrViolations is returned by Run when the checked packages contain at least
// one violation.
var ErrViolations = errors.New("strong-type capability violations found")

// checkFunc matches capcheck.Check; tests replace it to avoid loading packages.
type checkFunc func(ctx context.Context, cfg capcheck.Config, patterns ...string) ([]capcheck.Violation, error)

// Run checks the configured packages and writes the report to out. It returns
// ErrViolations if any violation was found.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	return run(ctx, cfg, out, errOut, capcheck.Check)
}

func run(ctx context.Context, cfg Config, out, errOut io.Writer, check checkFunc) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	violations, err := check(ctx, capcheck.Config{Dir: cfg.Dir, Tests: cfg.Tests}, cfg.Patterns...)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	if err := writeReport(out, cfg, violations); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if len(violations) > 0 {
		fmt.Fprintf(errOut, "%d violation(s)\n", len(violations))
		return ErrViolations
	}
	return nil
}

// report is the document written by the json and yaml formats.
type report struct {
	Violations []capcheck.Violation `json:"violations" yaml:"violations"`
}

func writeReport(w io.Writer, cfg Config, violations []capcheck.Violation) error {
	switch cfg.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report{Violations: nonNil(violations)})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report{Violations: nonNil(violations)}); err != nil {
			return err
		}
		return enc.Close()
	default:
		color := useColor(w, cfg.Color)
		for _, v := range violations {
			if _, err := fmt.Fprintln(w, formatText(v, color)); err != nil {
				return err
			}
		}
		return nil
	}
}

func nonNil(violations []capcheck.Violation) []capcheck.Violation {
	if violations == nil {
		return []capcheck.Violation{}
	}
	return violations
}

const (
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiFaint = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

func formatText(v capcheck.Violation, color bool) string {
	if !color {
		return v.String()
	}
	return fmt.Sprintf("%s%s:%d:%d:%s %s%s%s %s[%s]%s",
		ansiBold, v.Filename, v.Line, v.Column, ansiReset,
		ansiRed, v.Message, ansiReset,
		ansiFaint, v.Rule, ansiReset)
}

// useColor resolves the color mode; auto colors only terminals.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
