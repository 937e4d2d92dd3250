package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gends",
		Short: "Deterministic synthetic market-data generator",
	}
	root.AddCommand(newGenerateCommand(), newServeCommand())
	return root
}
