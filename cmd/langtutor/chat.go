package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langtutor/internal/cli"
	"github.com/at-ishikawa/langtutor/internal/inference"
	"github.com/at-ishikawa/langtutor/internal/providers"
)

func newChatCommand() *cobra.Command {
	var (
		model   string
		botName string
	)
	command := &cobra.Command{
		Use:   "chat",
		Short: "Chat with a language model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, defaultModel, err := providers.ChatClient(cfg)
			if err != nil {
				return err
			}
			if closer, ok := client.(io.Closer); ok {
				defer func() {
					if err := closer.Close(); err != nil {
						slog.Default().Warn("failed to close the chat client", "error", err)
					}
				}()
			}
			if model == "" {
				model = defaultModel
			}

			conversation := inference.NewConversation(client, model)
			chatCLI := cli.NewChatCLI(conversation, botName, os.Stdin, os.Stdout, cli.WithReplyTimeout(cfg.Chat.Timeout()))
			if err := chatCLI.Greet(); err != nil {
				return fmt.Errorf("chatCLI.Greet > %w", err)
			}
			return chatCLI.Run(cmd.Context(), chatCLI)
		},
	}
	flags := command.Flags()
	flags.StringVar(&model, "model", "", "model to chat with. Defaults to the configured model")
	flags.StringVar(&botName, "name", "", "name shown for the replies")
	return command
}
