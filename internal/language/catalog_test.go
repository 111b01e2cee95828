package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	first := Supported()
	require.Len(t, first, 20)

	seen := make(map[string]bool, len(first))
	for _, d := range first {
		assert.False(t, seen[d.Code], "duplicate code %s", d.Code)
		seen[d.Code] = true
		assert.NotEmpty(t, d.Name)
	}

	second := Supported()
	assert.Equal(t, first, second)

	first[0].Name = "changed"
	assert.Equal(t, "English", Supported()[0].Name)
}

func TestNameForCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "known code", code: "es", want: "Spanish"},
		{name: "last entry", code: "el", want: "Greek"},
		{name: "unknown code is returned unchanged", code: "xx", want: "xx"},
		{name: "empty code", code: "", want: ""},
		{name: "auto is not a language", code: AutoDetect, want: "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NameForCode(tt.code))
		})
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("ko"))
	assert.False(t, IsSupported("EN"))
	assert.False(t, IsSupported(AutoDetect))
}

func TestSpeechLocale(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "es", want: "es-ES"},
		{code: "zh", want: "zh-CN"},
		{code: "hi", want: "hi-IN"},
		{code: "sv", want: "en-US"},
		{code: "", want: "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, SpeechLocale(tt.code))
		})
	}
}
