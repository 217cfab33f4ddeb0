package main

import (
	"os"

	"github.com/jgoulah/rentaldash/internal/log"
)

func main() {
	defer log.Sync()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
