package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidar/stellar-team/internal/directory"
	"github.com/aidar/stellar-team/internal/repository"
)

// version is set at build time via -ldflags.
var version = "dev"

// members is the directory the commands read from; tests swap it out.
var members repository.MemberRepository = directory.Default()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "members",
		Short: "Inspect the STeLLAR team directory",
		Long:  "members prints the team directory shown on the STeLLAR team page,\nin display order.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		Version:      version,
	}

	root.AddCommand(newListCmd())
	root.AddCommand(newCountCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
