// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature shared by every command entry point.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main wires SIGINT/SIGTERM into ctx, runs the command and exits with its code.
// With no arguments the command is asked for its help text.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	os.Exit(Exec(ctx, stop, run, os.Args[1:], os.Stdout, os.Stderr))
}

// Exec is Main without the process plumbing.
func Exec(ctx context.Context, stop func(), run RunFunc, argv []string, stdout, stderr io.Writer) int {
	defer stop()
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
