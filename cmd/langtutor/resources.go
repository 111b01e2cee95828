package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langtutor/internal/providers"
	"github.com/at-ishikawa/langtutor/internal/resource"
)

func newResourcesCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "resources",
		Short: "Learning resources and chatbots",
	}
	command.AddCommand(newResourcesListCommand())
	return command
}

func newResourcesListCommand() *cobra.Command {
	var (
		lang   string
		level  string
		search string
	)
	command := &cobra.Command{
		Use:   "list",
		Short: "List resources of a language and level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedLevel, err := resource.ParseLevel(level)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			repository, closeRepository, err := providers.ResourceRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeRepository()

			resources, err := repository.FindResources(ctx, lang, parsedLevel)
			if err != nil {
				return fmt.Errorf("repository.FindResources > %w", err)
			}
			chatbots, err := repository.FindChatbots(ctx, lang)
			if err != nil {
				return fmt.Errorf("repository.FindChatbots > %w", err)
			}
			return printResources(cmd.OutOrStdout(), resource.Filter(resources, search), chatbots)
		},
	}
	flags := command.Flags()
	flags.StringVarP(&lang, "language", "l", "", "language code")
	flags.StringVar(&level, "level", string(resource.LevelBeginner), fmt.Sprintf("level. Possible values are %v", resource.Levels()))
	flags.StringVarP(&search, "search", "s", "", "filter by title or type")
	_ = command.MarkFlagRequired("language")
	return command
}

func printResources(w io.Writer, resources []resource.Resource, chatbots []resource.Chatbot) error {
	if len(resources) == 0 {
		if _, err := fmt.Fprintln(w, "No resources found."); err != nil {
			return err
		}
	}
	for _, r := range resources {
		price := "paid"
		if r.Free {
			price = "free"
		}
		if _, err := fmt.Fprintf(w, "%s [%s, %s]\n  %s\n  %s\n", r.Title, r.Type, price, r.Description, r.URL); err != nil {
			return fmt.Errorf("failed to write a resource: %w", err)
		}
	}
	if len(chatbots) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nChatbots:"); err != nil {
		return err
	}
	for _, bot := range chatbots {
		if _, err := fmt.Fprintf(w, "%s (%s)\n  %s\n", bot.Name, bot.Model, bot.Description); err != nil {
			return fmt.Errorf("failed to write a chatbot: %w", err)
		}
	}
	return nil
}
