package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var sample = []byte(`
log_level: debug
log_file: ""
gemini:
  image_model: gemini-image-test
display:
  handle_ttl: 10m
http:
  max_upload_mb: 8
`)

func TestInit(t *testing.T) {
	t.Run("key from environment", func(t *testing.T) {
		t.Setenv(APIKeyEnv, "  secret-key ")
		Init(sample)
		require.Equal(t, "secret-key", GConfig.Gemini.APIKey)
		require.Equal(t, "gemini-image-test", GConfig.ImageModel)
		require.Equal(t, "gemini-2.5-flash", GConfig.TextModel)
		require.Equal(t, "debug", GConfig.LogLevel)
		require.Equal(t, 10*time.Minute, GConfig.Display.TTL())
		require.Equal(t, int64(8<<20), GConfig.HTTP.MaxUploadBytes())
	})

	t.Run("missing key", func(t *testing.T) {
		t.Setenv(APIKeyEnv, "")
		require.Panics(t, func() { Init(sample) })
	})

	t.Run("key in yaml is ignored", func(t *testing.T) {
		t.Setenv(APIKeyEnv, "")
		require.Panics(t, func() { Init([]byte("gemini:\n  api_key: embedded\n")) })
	})
}

func TestVerify(t *testing.T) {
	c := &Config{Gemini: Gemini{APIKey: "k"}, Display: Display{HandleTTL: "soon"}}
	require.Error(t, c.Verify())

	c.HandleTTL = "1h"
	require.NoError(t, c.Verify())
}
