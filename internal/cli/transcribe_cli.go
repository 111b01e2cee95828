package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/at-ishikawa/langtutor/internal/language"
	"github.com/at-ishikawa/langtutor/internal/speech"
	"github.com/at-ishikawa/langtutor/internal/transcript"
)

const transcribeCommandExport = "/export"

// TranscribeCLI treats every input line as one spoken utterance
type TranscribeCLI struct {
	*InteractiveCLI
	session     *speech.Session
	transcriber *transcript.Transcriber
	log         *transcript.Log
	exportDir   string
	format      transcript.Format
	options     []transcript.ExportOption
	now         func() time.Time
}

func NewTranscribeCLI(
	session *speech.Session,
	transcriber *transcript.Transcriber,
	log *transcript.Log,
	exportDir string,
	format transcript.Format,
	stdin io.Reader,
	stdout io.Writer,
	options ...transcript.ExportOption,
) *TranscribeCLI {
	return &TranscribeCLI{
		InteractiveCLI: newInteractiveCLI(stdin, stdout),
		session:        session,
		transcriber:    transcriber,
		log:            log,
		exportDir:      exportDir,
		format:         format,
		options:        options,
		now:            time.Now,
	}
}

func (c *TranscribeCLI) Session(ctx context.Context) error {
	line, err := c.readLine("")
	if err != nil {
		return err
	}
	switch line {
	case "":
		return nil
	case chatCommandQuit, chatCommandExit:
		return errEnd
	case transcribeCommandExport:
		_, err := c.Export()
		return err
	}

	if err := c.transcriber.Start(ctx); err != nil {
		return fmt.Errorf("transcriber.Start > %w", err)
	}
	c.session.Feed(line)
	entry, ok, err := c.transcriber.Stop(ctx)
	if err != nil {
		return fmt.Errorf("transcriber.Stop > %w", err)
	}
	if !ok {
		return nil
	}

	translated := entry.Translated
	if entry.Degraded {
		translated = c.yellow.Sprint(translated)
	}
	if _, err := fmt.Fprintf(c.stdoutWriter, "[%s] %s\n  %s: %s\n",
		entry.Timestamp.Format("3:04:05 PM"),
		entry.Original,
		language.NameForCode(c.transcriber.Target()),
		translated,
	); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

// Export writes the log so far, and does nothing when it is empty
func (c *TranscribeCLI) Export() (string, error) {
	entries := c.log.Entries()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(c.stdoutWriter, "Nothing to export yet.")
		return "", nil
	}
	path, err := transcript.Export(entries, c.format, c.exportDir, c.now(), c.options...)
	if err != nil {
		return "", fmt.Errorf("transcript.Export > %w", err)
	}
	_, _ = fmt.Fprintf(c.stdoutWriter, "Exported %d entries to %s\n", len(entries), path)
	return path, nil
}
