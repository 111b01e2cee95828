// Package resource provides the library of learning resources and practice chatbots.
package resource

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

//go:generate mockgen -source=resource.go -destination=../mocks/resource/mock_repository.go -package=mock_resource

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

var levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

func Levels() []Level {
	return slices.Clone(levels)
}

func ParseLevel(value string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(value)))
	if !slices.Contains(levels, level) {
		return "", fmt.Errorf("unknown level %q, must be one of %v", value, levels)
	}
	return level, nil
}

// Resource is an external site or course for learning a language
type Resource struct {
	Language    string `db:"language" yaml:"-" json:"language"`
	Level       Level  `db:"level" yaml:"-" json:"level"`
	Title       string `db:"title" yaml:"title" json:"title"`
	Type        string `db:"type" yaml:"type" json:"type"`
	URL         string `db:"url" yaml:"url" json:"url"`
	Free        bool   `db:"free" yaml:"free" json:"free"`
	Description string `db:"description" yaml:"description,omitempty" json:"description,omitempty"`
}

// Chatbot is a conversational model suggested for practicing a language
type Chatbot struct {
	Language    string `db:"language" yaml:"-" json:"language"`
	Name        string `db:"name" yaml:"name" json:"name"`
	Description string `db:"description" yaml:"description" json:"description"`
	Model       string `db:"model" yaml:"model" json:"model"`
}

type Repository interface {
	FindResources(ctx context.Context, language string, level Level) ([]Resource, error)
	FindChatbots(ctx context.Context, language string) ([]Chatbot, error)
}

// Filter keeps the resources whose title or type contains term, ignoring case.
// An empty term keeps everything.
func Filter(resources []Resource, term string) []Resource {
	term = strings.ToLower(term)
	filtered := make([]Resource, 0, len(resources))
	for _, resource := range resources {
		if strings.Contains(strings.ToLower(resource.Title), term) ||
			strings.Contains(strings.ToLower(resource.Type), term) {
			filtered = append(filtered, resource)
		}
	}
	return filtered
}
