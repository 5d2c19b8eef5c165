package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "sift",
		Short: "Prime factorization tools built on a shrinking-bound factor search",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newFactorCmd())
	root.AddCommand(newPrimesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("sift 0.1.0-dev")
		},
	}
}
