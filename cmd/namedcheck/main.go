// Command namedcheck reports strong types of package named used through
// capabilities their tags do not declare: comparisons, switches and map keys
// that Go's compiler accepts for any comparable struct.
//
// Usage:
//
//	namedcheck [-dir dir] [-tests] [-format text|json|yaml] [-color auto|always|never] [patterns...]
//
// The exit status is 1 if violations were found and 2 on any other failure.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-digitaltwin/go-named/internal/checkcmd"
)

func main() {
	cfg, err := checkcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf(2, "Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = checkcmd.Run(ctx, cfg, os.Stdout, os.Stderr)
	switch {
	case errors.Is(err, checkcmd.ErrViolations):
		stop()
		os.Exit(1)
	case err != nil:
		stop()
		exitf(2, "Error: %v", err)
	}
}

// exitf writes a formatted error message to stderr and exits with the given
// code.
func exitf(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
