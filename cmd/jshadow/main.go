package main

import (
	"os"
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(newExtractCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
