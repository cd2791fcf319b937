package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/claudevoice/claudevoice/core/hook"
	"github.com/claudevoice/claudevoice/core/voice"
)

var sayCmd = &cobra.Command{
	Use:   "say <text>...",
	Short: "Speak arbitrary text with the configured voice",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := hook.Load(hook.Dir())
		return voice.New().Speak(cmd.Context(), strings.Join(args, " "), cfg)
	},
}

func init() {
	rootCmd.AddCommand(sayCmd)
}
