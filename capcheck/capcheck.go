/*
Package capcheck reports uses of strong types that the Go compiler accepts but
that their tags did not opt into.

Operations of the named package are generic functions whose constraints reject
strong types lacking the corresponding capability. Go's built-in operators are
not subject to such constraints: == and != compile for any comparable struct,
expression switches compare with ==, and any comparable type may key a map.
capcheck loads packages with [packages.Load] and reports:

  - comparisons (== and !=) of a strong type whose tag does not embed
    named.Comparable ([RuleComparison]);
  - expression switches over such a strong type ([RuleSwitch]);
  - map types keyed by a strong type whose tag does not embed named.Hashable
    ([RuleMapKey]);
  - such strong types passed as type arguments for type parameters
    constrained by comparable ([RuleTypeArgument]);
  - tags embedding named.Hashable without named.Comparable
    ([RuleHashWithoutCompare]).

Strong types are found through struct fields and array elements, and through
conversions to interface types, so comparing two structs holding a strong type
is reported like comparing the strong types themselves. A named.Ref is always
reported in comparisons, switches, map keys and comparable type arguments: its
equality is the identity of the referenced storage, whatever its tag declares.
*/
package capcheck

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

// namedPath is the import path of the package declaring strong types.
const namedPath = "github.com/go-digitaltwin/go-named"

// loadMode specifies what information to load from packages.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// A Rule identifies the kind of misuse a Violation reports.
type Rule string

const (
	RuleComparison         Rule = "comparison"
	RuleSwitch             Rule = "switch"
	RuleMapKey             Rule = "map-key"
	RuleHashWithoutCompare Rule = "hash-without-compare"
	RuleTypeArgument       Rule = "type-argument"
)

// Violation is a single misuse of a strong type found in the checked source.
type Violation struct {
	Rule     Rule   `json:"rule" yaml:"rule"`
	Filename string `json:"filename" yaml:"filename"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
	Message  string `json:"message" yaml:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%d:%d: %s [%s]", v.Filename, v.Line, v.Column, v.Message, v.Rule)
}

func compareViolations(a, b Violation) int {
	return cmp.Or(
		cmp.Compare(a.Filename, b.Filename),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Column, b.Column),
		cmp.Compare(a.Rule, b.Rule),
	)
}

// Config controls how Check loads packages.
type Config struct {
	// Dir is the directory in which patterns are resolved; the current
	// directory if empty.
	Dir string
	// Tests includes the test files of the matched packages.
	Tests bool
}

// Check loads the packages matching the given patterns ("./..." if none) and
// returns their violations, sorted by position.
//
// Packages are inspected concurrently. Check fails if any package cannot be
// loaded or type-checked, since an incomplete type-check hides strong types.
func Check(ctx context.Context, cfg Config, patterns ...string) (_ []Violation, err error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	ctx, span := tracer.Start(ctx, "capcheck.Check", trace.WithAttributes(
		attribute.StringSlice("capcheck.patterns", patterns),
		attribute.Bool("capcheck.tests", cfg.Tests),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		measureCheck(ctx, err == nil, time.Since(start))
	}()

	pkgs, err := packages.Load(&packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     cfg.Dir,
		Tests:   cfg.Tests,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}
	span.SetAttributes(attribute.Int("capcheck.packages", len(pkgs)))

	results := make([][]Violation, len(pkgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = inspect(pkg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// With Tests set, a package is loaded both on its own and as part of its
	// test variant; the same violation is then reported twice.
	var violations []Violation
	seen := make(map[Violation]bool)
	for _, r := range results {
		for _, v := range r {
			if seen[v] {
				continue
			}
			seen[v] = true
			violations = append(violations, v)
		}
	}
	slices.SortFunc(violations, compareViolations)

	for _, v := range violations {
		countViolation(ctx, v.Rule)
	}
	return violations, nil
}
