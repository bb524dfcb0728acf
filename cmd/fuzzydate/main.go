package main

import (
	"os"

	"github.com/mph-llm-experiments/fuzzydate/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
