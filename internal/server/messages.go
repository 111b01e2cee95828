package server

import (
	"github.com/at-ishikawa/langtutor/internal/inference"
	"github.com/at-ishikawa/langtutor/internal/resource"
)

const (
	TranslateProcedure      = "/langtutor.v1.TranslationService/Translate"
	DetectLanguageProcedure = "/langtutor.v1.TranslationService/DetectLanguage"
	ListLanguagesProcedure  = "/langtutor.v1.TranslationService/ListLanguages"
	ChatProcedure           = "/langtutor.v1.ChatService/Chat"
	ListResourcesProcedure  = "/langtutor.v1.ResourceService/ListResources"
)

type TranslateRequest struct {
	Text           string `json:"text" validate:"required,max=5000"`
	SourceLanguage string `json:"source_language,omitempty" validate:"omitempty,source_language"`
	TargetLanguage string `json:"target_language" validate:"required,language"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	Status         string `json:"status"`
	// Degraded is set when the text is a placeholder and not a translation
	Degraded bool   `json:"degraded"`
	Provider string `json:"provider"`
}

type DetectLanguageRequest struct {
	Text   string `json:"text" validate:"required"`
	Remote bool   `json:"remote,omitempty"`
}

type DetectLanguageResponse struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

type ListLanguagesRequest struct{}

type Language struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	SpeechLocale string `json:"speech_locale"`
}

type ListLanguagesResponse struct {
	Languages []Language `json:"languages"`
}

type ChatRequest struct {
	Model   string           `json:"model,omitempty"`
	Message string           `json:"message" validate:"required"`
	History []inference.Turn `json:"history,omitempty" validate:"max=100"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}

type ListResourcesRequest struct {
	Language string `json:"language" validate:"required,language"`
	Level    string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Search   string `json:"search,omitempty"`
}

type ListResourcesResponse struct {
	Resources []resource.Resource `json:"resources"`
	Chatbots  []resource.Chatbot  `json:"chatbots"`
}
