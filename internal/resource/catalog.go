package resource

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yml
var embeddedCatalog []byte

type catalogFile struct {
	Resources map[string]map[Level][]Resource `yaml:"resources"`
	Chatbots  map[string][]Chatbot            `yaml:"chatbots"`
}

// CatalogRepository serves resources from a YAML catalog held in memory
type CatalogRepository struct {
	resources map[string]map[Level][]Resource
	chatbots  map[string][]Chatbot
}

// NewCatalogRepository loads the catalog bundled with the binary
func NewCatalogRepository() (*CatalogRepository, error) {
	return parseCatalog(embeddedCatalog)
}

// LoadCatalogRepository loads a catalog from a YAML file
func LoadCatalogRepository(path string) (*CatalogRepository, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	repository, err := parseCatalog(content)
	if err != nil {
		return nil, fmt.Errorf("parseCatalog(%s) > %w", path, err)
	}
	return repository, nil
}

func parseCatalog(content []byte) (*CatalogRepository, error) {
	var file catalogFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}

	repository := &CatalogRepository{
		resources: make(map[string]map[Level][]Resource, len(file.Resources)),
		chatbots:  make(map[string][]Chatbot, len(file.Chatbots)),
	}
	for language, byLevel := range file.Resources {
		repository.resources[language] = make(map[Level][]Resource, len(byLevel))
		for level, resources := range byLevel {
			if !slices.Contains(levels, level) {
				return nil, fmt.Errorf("unknown level %q for language %s", level, language)
			}
			for i := range resources {
				resources[i].Language = language
				resources[i].Level = level
			}
			repository.resources[language][level] = resources
		}
	}
	for language, chatbots := range file.Chatbots {
		for i := range chatbots {
			chatbots[i].Language = language
		}
		repository.chatbots[language] = chatbots
	}
	return repository, nil
}

// FindResources returns an empty list for an unknown language or level
func (r *CatalogRepository) FindResources(_ context.Context, language string, level Level) ([]Resource, error) {
	return slices.Clone(r.resources[language][level]), nil
}

func (r *CatalogRepository) FindChatbots(_ context.Context, language string) ([]Chatbot, error) {
	return slices.Clone(r.chatbots[language]), nil
}

// Languages returns the languages that have resources or chatbots, sorted
func (r *CatalogRepository) Languages() []string {
	var languages []string
	for language := range r.resources {
		languages = append(languages, language)
	}
	for language := range r.chatbots {
		if !slices.Contains(languages, language) {
			languages = append(languages, language)
		}
	}
	slices.Sort(languages)
	return languages
}

// All returns every resource and chatbot ordered by language and level
func (r *CatalogRepository) All() ([]Resource, []Chatbot) {
	var resources []Resource
	var chatbots []Chatbot
	for _, language := range r.Languages() {
		for _, level := range levels {
			resources = append(resources, r.resources[language][level]...)
		}
		chatbots = append(chatbots, r.chatbots[language]...)
	}
	return resources, chatbots
}
