package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langtutor/internal/language"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, descriptor := range language.Supported() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-3s %-12s %s\n",
					descriptor.Code, descriptor.Name, language.SpeechLocale(descriptor.Code)); err != nil {
					return fmt.Errorf("failed to write a language: %w", err)
				}
			}
			return nil
		},
	}
}
