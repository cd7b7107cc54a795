// Package main provides the brandgen CLI: brand files in, React + Tailwind
// component libraries out.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// exitError carries a process exit code without an error message. Lint
// uses it for the soft gate.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
