package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/langtutor/internal/bootstrap"
	"github.com/at-ishikawa/langtutor/internal/config"
	"github.com/at-ishikawa/langtutor/internal/server"
	"github.com/at-ishikawa/langtutor/internal/testutil"
)

func TestNewHandler(t *testing.T) {
	cfg := &config.Config{
		Server:      config.ServerConfig{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}},
		Translation: config.TranslationConfig{Provider: "mymemory", TimeoutSeconds: 1},
		Chat:        config.ChatConfig{Provider: "huggingface"},
		Resources:   config.ResourcesConfig{Source: "catalog"},
	}
	handler, err := newHandler(context.Background(), bootstrap.New(), cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	defer srv.Close()

	client := connect.NewClient[server.ListResourcesRequest, server.ListResourcesResponse](
		srv.Client(), srv.URL+server.ListResourcesProcedure, connect.WithCodec(server.Codec),
	)
	res, err := client.CallUnary(context.Background(), connect.NewRequest(&server.ListResourcesRequest{
		Language: "es",
		Level:    "beginner",
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, res.Msg.Resources)

	preflight, err := http.NewRequest(http.MethodOptions, srv.URL+server.TranslateProcedure, nil)
	require.NoError(t, err)
	preflight.Header.Set("Origin", "http://localhost:3000")
	preflightRes, err := srv.Client().Do(preflight)
	require.NoError(t, err)
	defer preflightRes.Body.Close()
	assert.Equal(t, http.StatusNoContent, preflightRes.StatusCode)
	assert.Equal(t, "http://localhost:3000", preflightRes.Header.Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_InvalidProvider(t *testing.T) {
	_, err := newHandler(context.Background(), bootstrap.New(), &config.Config{})
	assert.ErrorContains(t, err, "invalid translation provider")
}

func TestLoadConfig(t *testing.T) {
	configFile = testutil.SetupTestConfigWithAPIKeys(t, t.TempDir(), "server:\n  port: 9090\n")
	defer func() { configFile = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "fake-hf-key", cfg.HuggingFace.APIKey)
}
