package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langtutor/internal/language"
	"github.com/at-ishikawa/langtutor/internal/translation"
)

func newDetectCommand() *cobra.Command {
	var (
		remote   bool
		provider TranslationProvider
	)
	command := &cobra.Command{
		Use:   "detect <text>...",
		Short: "Detect the language of a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			var code string
			if remote {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				client, err := newTranslationClient(cfg, provider)
				if err != nil {
					return err
				}
				code = client.DetectLanguageRemote(cmd.Context(), text)
			} else {
				// the script heuristic needs no provider or config
				code = translation.DetectLanguage(text)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", code, language.NameForCode(code))
			return err
		},
	}
	flags := command.Flags()
	flags.BoolVar(&remote, "remote", false, "ask the translation provider when it can detect languages")
	addProviderFlag(flags, &provider)
	return command
}
