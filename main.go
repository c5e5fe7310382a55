// Cunny Code - translate text to and from a two-glyph symbolic alphabet.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cunnycode/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "cunnycode: %v\n", err)
		os.Exit(1)
	}
}
