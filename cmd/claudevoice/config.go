package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/claudevoice/claudevoice/core/hook"
)

var dirStyle = lipgloss.NewStyle().Faint(true)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir := hook.Dir()
		cfg := hook.Load(dir)

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), dirStyle.Render("# "+dir))
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
