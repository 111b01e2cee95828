package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/langtutor/internal/assets"
	"github.com/at-ishikawa/langtutor/internal/pdf"
)

type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
	FormatPDF      Format = "pdf"
)

var formats = []Format{FormatText, FormatMarkdown, FormatYAML, FormatPDF}

const (
	fileNamePrefix = "conversation-transcript-"
	// fileNameLayout is RFC3339 in basic format, without the colons some filesystems reject
	fileNameLayout = "20060102T150405Z"
	// timeLayout is also used by the bundled markdown template
	timeLayout = "3:04:05 PM"
)

func Formats() []Format {
	return slices.Clone(formats)
}

func ParseFormat(value string) (Format, error) {
	format := Format(strings.ToLower(value))
	if !slices.Contains(formats, format) {
		return "", fmt.Errorf("unknown transcript format %q, must be one of %v", value, formats)
	}
	return format, nil
}

func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatYAML:
		return ".yml"
	case FormatPDF:
		return ".pdf"
	default:
		return ".txt"
	}
}

// FileName is the default export file name for a transcript exported at now
func FileName(format Format, now time.Time) string {
	return fileNamePrefix + now.UTC().Format(fileNameLayout) + format.Extension()
}

// RenderText renders one block per entry with its local time, original and translation
func RenderText(entries []Entry) string {
	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		blocks = append(blocks, fmt.Sprintf("[%s] \nOriginal: %s\nTranslated: %s\n",
			entry.Timestamp.Format(timeLayout),
			entry.Original,
			entry.Translated,
		))
	}
	return strings.Join(blocks, "\n")
}

// RenderMarkdown renders the entries with the template at templatePath, or the bundled one when it is empty
func RenderMarkdown(entries []Entry, templatePath string) (string, error) {
	tmpl, err := assets.ParseTranscriptTemplate(templatePath)
	if err != nil {
		return "", fmt.Errorf("assets.ParseTranscriptTemplate > %w", err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, entries); err != nil {
		return "", fmt.Errorf("tmpl.Execute > %w", err)
	}
	return sb.String(), nil
}

type yamlTranscript struct {
	Entries []Entry `yaml:"entries"`
}

func RenderYAML(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	content, err := yaml.Marshal(yamlTranscript{Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("yaml.Marshal > %w", err)
	}
	return content, nil
}

type exportOptions struct {
	markdownTemplate string
}

type ExportOption func(*exportOptions)

// WithMarkdownTemplate replaces the bundled template of the markdown and pdf formats
func WithMarkdownTemplate(path string) ExportOption {
	return func(options *exportOptions) {
		options.markdownTemplate = path
	}
}

// Export writes the entries into dir with the default file name and returns the written path
func Export(entries []Entry, format Format, dir string, now time.Time, options ...ExportOption) (string, error) {
	var opts exportOptions
	for _, option := range options {
		option(&opts)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	path := filepath.Join(dir, FileName(format, now))

	var content []byte
	switch format {
	case FormatText:
		content = []byte(RenderText(entries))
	case FormatMarkdown:
		markdown, err := RenderMarkdown(entries, opts.markdownTemplate)
		if err != nil {
			return "", err
		}
		content = []byte(markdown)
	case FormatYAML:
		var err error
		content, err = RenderYAML(entries)
		if err != nil {
			return "", err
		}
	case FormatPDF:
		markdown, err := RenderMarkdown(entries, opts.markdownTemplate)
		if err != nil {
			return "", err
		}
		pdfPath, err := pdf.RenderMarkdown([]byte(markdown), path)
		if err != nil {
			return "", fmt.Errorf("pdf.RenderMarkdown > %w", err)
		}
		return pdfPath, nil
	default:
		return "", fmt.Errorf("unknown transcript format %q", format)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}
