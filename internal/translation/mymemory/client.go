// Package mymemory is a translation provider backed by the free MyMemory API.
// https://mymemory.translated.net/doc/
package mymemory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/langtutor/internal/translation"
)

const (
	DefaultBaseURL = "https://api.mymemory.translated.net"
	providerName   = "mymemory"
)

type Client struct {
	httpClient *resty.Client
	email      string
}

// NewClient creates a client. The email is optional and raises the daily quota of the free tier.
func NewClient(baseURL, email string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: resty.New().SetBaseURL(baseURL),
		email:      email,
	}
}

func (client *Client) Name() string {
	return providerName
}

type response struct {
	ResponseData    *responseData  `json:"responseData"`
	ResponseStatus  responseStatus `json:"responseStatus"`
	ResponseDetails string         `json:"responseDetails"`
}

type responseData struct {
	TranslatedText *string `json:"translatedText"`
}

type responseStatus int

func (s *responseStatus) UnmarshalJSON(data []byte) error {
	// responseStatus is a number on success, but some errors report it as a string like "403"
	raw := strings.Trim(string(data), `"`)
	status, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("strconv.Atoi(%s) > %w", raw, err)
	}
	*s = responseStatus(status)
	return nil
}

func (client *Client) Translate(ctx context.Context, req translation.Request) (string, error) {
	params := map[string]string{
		"q":        req.Text,
		"langpair": req.LanguagePair(),
	}
	if client.email != "" {
		params["de"] = client.email
	}

	res, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/get")
	if err != nil {
		return "", fmt.Errorf("client.R.Get > %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("status code: %d, body: %s", res.StatusCode(), res.String())
	}

	var body response
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", fmt.Errorf("json.Unmarshal > %w", err)
	}
	if body.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("translation failed with response status %d: %s", body.ResponseStatus, body.ResponseDetails)
	}
	if body.ResponseData == nil || body.ResponseData.TranslatedText == nil {
		return "", fmt.Errorf("response has no translatedText: %s", res.String())
	}
	return *body.ResponseData.TranslatedText, nil
}
