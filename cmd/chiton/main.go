// Command chiton reports the lowest total risk path through a risk map.
//
// Usage:
//
//	chiton solve input.txt
//	chiton solve --tiles 5 --log-level debug < input.txt
//	chiton expand input.txt
//	chiton solve --config chiton.yaml input.txt
//
// Config file (all keys optional):
//
//	tiles: 5
//	log_level: info
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("chiton failed", "error", err)
		os.Exit(1)
	}
}
