package main

import (
	"os"

	"github.com/wonny/hedgesim/cmd/hedgesim/commands"
)

// main is the entry point for the HedgeSim CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/hedgesim [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
