package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langtutor/internal/cli"
	"github.com/at-ishikawa/langtutor/internal/speech"
	"github.com/at-ishikawa/langtutor/internal/transcript"
)

func newTranscribeCommand() *cobra.Command {
	var (
		target    string
		export    bool
		format    string
		outputDir string
		provider  TranslationProvider
	)
	command := &cobra.Command{
		Use:   "transcribe",
		Short: "Translate each line read from stdin as one utterance",
		Long: "Translate each line read from stdin as one utterance and keep a transcript.\n" +
			"Type /export to write the transcript so far and /quit to stop.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Transcripts.Format
			}
			exportFormat, err := transcript.ParseFormat(format)
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = cfg.Transcripts.ExportDirectory
			}

			translator, err := newTranslationClient(cfg, provider)
			if err != nil {
				return err
			}
			// stdin is always available as the source of utterances
			session := speech.NewSession(true)
			log := transcript.NewLog()
			transcriber, err := transcript.NewTranscriber(session, translator, log, target)
			if err != nil {
				return fmt.Errorf("transcript.NewTranscriber > %w", err)
			}

			transcribeCLI := cli.NewTranscribeCLI(
				session, transcriber, log, outputDir, exportFormat, os.Stdin, os.Stdout,
				transcript.WithMarkdownTemplate(cfg.Transcripts.MarkdownTemplate),
			)
			if err := transcribeCLI.Run(cmd.Context(), transcribeCLI); err != nil {
				return err
			}
			if export {
				if _, err := transcribeCLI.Export(); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags := command.Flags()
	flags.StringVarP(&target, "to", "t", "", "target language code")
	flags.BoolVar(&export, "export", false, "export the transcript when the input ends")
	flags.StringVar(&format, "format", "", fmt.Sprintf("export format. Possible values are %v", transcript.Formats()))
	flags.StringVar(&outputDir, "output-dir", "", "directory to export the transcript into")
	addProviderFlag(flags, &provider)
	_ = command.MarkFlagRequired("to")
	return command
}
