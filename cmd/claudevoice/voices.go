package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/claudevoice/claudevoice/core/texttospeech/deepgram"
)

var (
	voiceStyle    = lipgloss.NewStyle().Bold(true)
	languageStyle = lipgloss.NewStyle().Faint(true)
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List the available text-to-speech voices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		models, err := deepgram.ListVoices(cmd.Context())
		if err != nil {
			// No key or no network; the built-in catalog still shows what
			// the voice config option accepts.
			for _, voice := range deepgram.GetAvailableVoices() {
				fmt.Fprintln(cmd.OutOrStdout(), voiceStyle.Render(string(voice)))
			}
			return nil
		}

		for _, model := range models {
			if model.Architecture != "aura" {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
				voiceStyle.Render(model.CanonicalName),
				languageStyle.Render(strings.Join(model.Languages, ", ")),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(voicesCmd)
}
