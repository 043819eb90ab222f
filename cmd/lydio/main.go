package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/lydio/internal/cli"
	"github.com/arthur-debert/lydio/pkg/output"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.ErrorLine(err))
		os.Exit(1)
	}
}
