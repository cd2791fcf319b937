package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "claudevoice error: %v\n", err)
	}

	// The hook must never make its caller believe a failure occurred, so
	// every path exits cleanly.
	os.Exit(0)
}
