package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/at-ishikawa/langtutor/internal/inference"
)

const (
	chatCommandQuit    = "/quit"
	chatCommandExit    = "/exit"
	chatCommandClear   = "/clear"
	chatCommandHistory = "/history"
)

// ChatCLI is a REPL around a conversation with a model
type ChatCLI struct {
	*InteractiveCLI
	conversation *inference.Conversation
	botName      string
	timeout      time.Duration
}

type ChatCLIOption func(*ChatCLI)

// WithReplyTimeout bounds the wait for each reply
func WithReplyTimeout(timeout time.Duration) ChatCLIOption {
	return func(c *ChatCLI) {
		c.timeout = timeout
	}
}

func NewChatCLI(conversation *inference.Conversation, botName string, stdin io.Reader, stdout io.Writer, options ...ChatCLIOption) *ChatCLI {
	if botName == "" {
		botName = "Language Tutor"
	}
	c := &ChatCLI{
		InteractiveCLI: newInteractiveCLI(stdin, stdout),
		conversation:   conversation,
		botName:        botName,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *ChatCLI) Greet() error {
	_, err := fmt.Fprintf(c.stdoutWriter, "Chatting with %s (%s). Commands: %s, %s, %s\n",
		c.bold.Sprint(c.botName),
		c.conversation.Model(),
		chatCommandClear, chatCommandHistory, chatCommandQuit,
	)
	return err
}

func (c *ChatCLI) Session(ctx context.Context) error {
	message, err := c.readLine("You: ")
	if err != nil {
		return err
	}

	switch message {
	case "":
		return nil
	case chatCommandQuit, chatCommandExit:
		_, _ = fmt.Fprintln(c.stdoutWriter, "Conversation ended.")
		return errEnd
	case chatCommandClear:
		c.conversation.Clear()
		_, _ = fmt.Fprintln(c.stdoutWriter, "Conversation cleared.")
		return nil
	case chatCommandHistory:
		return c.printHistory()
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	reply, err := c.conversation.Send(ctx, message)
	if err != nil {
		// a failed reply is shown and the conversation goes on
		if _, writeErr := c.red.Fprintf(c.stdoutWriter, "Error: %v\n", err); writeErr != nil {
			return fmt.Errorf("failed to write to stdout: %w", writeErr)
		}
		return nil
	}
	if _, err := fmt.Fprintf(c.stdoutWriter, "%s: %s\n", c.bold.Sprint(c.botName), reply); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ChatCLI) printHistory() error {
	turns := c.conversation.Turns()
	if len(turns) == 0 {
		_, err := fmt.Fprintln(c.stdoutWriter, "No messages yet.")
		return err
	}
	for i, turn := range turns {
		if _, err := fmt.Fprintf(c.stdoutWriter, "%d. You: %s\n   %s: %s\n",
			i+1, turn.User, c.botName, c.italic.Sprint(turn.Bot)); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return nil
}
