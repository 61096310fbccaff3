package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/prompt"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <topic>",
	Short: "Print the multi-stage deep research prompt for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), prompt.DeepResearch(strings.Join(args, " ")))
		return err
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
