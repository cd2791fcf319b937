package main

import (
	"github.com/spf13/cobra"

	"github.com/claudevoice/claudevoice/core/hook"
	"github.com/claudevoice/claudevoice/core/voice"
)

var rootCmd = &cobra.Command{
	Use:   "claudevoice",
	Short: "Voice notifications for coding assistant hook events",
	Long: `claudevoice reads one hook event as JSON from stdin, resolves it to a
short message through configurable templates, and speaks it aloud. Wire it
up as a UserPromptSubmit, Stop and Notification hook; run it with a
subcommand for manual testing and inspection.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return hook.Run(cmd.Context(), cmd.InOrStdin(), hook.Dir(), voice.New())
	},
}
