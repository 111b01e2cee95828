// Package assets holds the templates bundled with the binary.
package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/transcript.md.go.tmpl
var fallbackTranscriptTemplate string

const transcriptTemplateName = "transcript.md.go.tmpl"

// ParseTranscriptTemplate parses the markdown template of a transcript export.
// The bundled template is used when templatePath is empty or cannot be parsed.
func ParseTranscriptTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, transcriptTemplateName, fallbackTranscriptTemplate)
}

func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
