package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langtutor/internal/language"
	"github.com/at-ishikawa/langtutor/internal/translation"
)

func newTranslateCommand() *cobra.Command {
	var (
		target   string
		source   string
		provider TranslationProvider
	)
	command := &cobra.Command{
		Use:   "translate <text>...",
		Short: "Translate text into another language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, err := newTranslationClient(cfg, provider)
			if err != nil {
				return err
			}

			result, err := client.Translate(cmd.Context(), translation.Request{
				Text:   strings.Join(args, " "),
				Source: source,
				Target: target,
			})
			if err != nil {
				return fmt.Errorf("client.Translate > %w", err)
			}
			return printTranslation(cmd.OutOrStdout(), result)
		},
	}
	flags := command.Flags()
	flags.StringVarP(&target, "to", "t", "", "target language code")
	flags.StringVarP(&source, "from", "f", language.AutoDetect, "source language code")
	addProviderFlag(flags, &provider)
	_ = command.MarkFlagRequired("to")
	return command
}

func printTranslation(w io.Writer, result translation.Result) error {
	if _, err := fmt.Fprintln(w, result.Text); err != nil {
		return fmt.Errorf("failed to write the translation: %w", err)
	}
	if result.Degraded() {
		if _, err := color.New(color.FgYellow).Fprintf(w, "(%s is unavailable, showing a placeholder: %v)\n", result.Provider, result.Reason); err != nil {
			return fmt.Errorf("failed to write the translation: %w", err)
		}
	}
	return nil
}
