package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: &Config{
				Server: ServerConfig{Listen: ":8080", Timeout: 30 * time.Second},
				API:    APIConfig{URL: DefaultAPIURL},
			},
		},
		{
			name: "missing listen",
			config: &Config{
				Server: ServerConfig{Timeout: 30 * time.Second},
				API:    APIConfig{URL: DefaultAPIURL},
			},
			wantErr: true,
			errMsg:  "server.listen is required",
		},
		{
			name: "missing server timeout",
			config: &Config{
				Server: ServerConfig{Listen: ":8080"},
				API:    APIConfig{URL: DefaultAPIURL},
			},
			wantErr: true,
			errMsg:  "server.timeout is required",
		},
		{
			name: "missing api url",
			config: &Config{
				Server: ServerConfig{Listen: ":8080", Timeout: 30 * time.Second},
			},
			wantErr: true,
			errMsg:  "api.url is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAgainstEmbeddedSchema(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)

	var parsed struct {
		Defs map[string]json.RawMessage `json:"$defs"`
	}
	require.NoError(t, json.Unmarshal(data, &parsed))
	for _, def := range []string{"Config", "ServerConfig", "APIConfig", "PageConfig"} {
		assert.Contains(t, parsed.Defs, def)
	}
	assert.Contains(t, string(data), "Headlines API endpoint")
}
