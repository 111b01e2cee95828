package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntry struct {
	Original   string
	Translated string
	Timestamp  time.Time
	Degraded   bool
}

func TestParseTranscriptTemplate(t *testing.T) {
	entries := []testEntry{
		{
			Original:   "Good morning",
			Translated: "Buenos días",
			Timestamp:  time.Date(2024, 3, 9, 9, 5, 7, 0, time.UTC),
		},
		{
			Original:   "See you",
			Translated: "[Traducción] See you",
			Timestamp:  time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC),
			Degraded:   true,
		},
	}
	embeddedContents := "# Conversation transcript\n" +
		"\n## 9:05:07 AM\n\n- **Original:** Good morning\n- **Translated:** Buenos días\n" +
		"\n## 2:30:00 PM\n\n- **Original:** See you\n- **Translated:** [Traducción] See you\n" +
		"- *Translation unavailable, placeholder shown*\n"

	tests := []struct {
		name         string
		templatePath string
		templateData any

		wantTemplateName     string
		wantTemplateContents string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				content := `{{ range . }}{{ .Original }} => {{ .Translated }};{{ end }}`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			}(t),
			templateData:         entries,
			wantTemplateName:     "custom.md.go.tmpl",
			wantTemplateContents: "Good morning => Buenos días;See you => [Traducción] See you;",
		},
		{
			name:                 "uses embedded template when no path is set",
			templatePath:         "",
			templateData:         entries,
			wantTemplateName:     "transcript.md.go.tmpl",
			wantTemplateContents: embeddedContents,
		},
		{
			name:                 "uses embedded template when file doesn't exist",
			templatePath:         "/non/existent/invalid.md.go.tmpl",
			templateData:         []testEntry{},
			wantTemplateName:     "transcript.md.go.tmpl",
			wantTemplateContents: "# Conversation transcript\n",
		},
		{
			name: "uses embedded template when filesystem template is invalid",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "invalid.md.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`Bad: {{ .Unclosed`), 0644))
				return templatePath
			}(t),
			templateData:         entries,
			wantTemplateName:     "transcript.md.go.tmpl",
			wantTemplateContents: embeddedContents,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseTranscriptTemplate(tt.templatePath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemplateName, tmpl.Name())

			var buf bytes.Buffer
			require.NoError(t, tmpl.Execute(&buf, tt.templateData))
			assert.Equal(t, tt.wantTemplateContents, buf.String())
		})
	}
}
