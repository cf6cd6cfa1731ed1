package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		reportFailure(err)
		os.Exit(1)
	}
}

// reportFailure prints the terminal error unless the run was cancelled, in
// which case the interrupt already told the user everything.
func reportFailure(err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	fmt.Fprintf(os.Stderr, "recast: %v\n", err)
}
