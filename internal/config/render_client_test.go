package config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClientAddOrUpdateSecret(t *testing.T) {
	var got AddOrUpdateSecretRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/services/srv-1/secret-files/meta_access_token", r.URL.Path)
		assert.Equal(t, "Bearer rnd-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRenderClient(&Config{Render: Render{APIKey: "rnd-key"}})
	client.BaseURL = server.URL

	err := client.AddOrUpdateSecret(context.Background(), "srv-1", "meta_access_token", "EAAnovo")

	require.NoError(t, err)
	assert.Equal(t, "EAAnovo", got.Content)
}

func TestRenderClientAddOrUpdateSecretError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"unauthorized"}`))
	}))
	defer server.Close()

	client := NewRenderClient(&Config{})
	client.BaseURL = server.URL

	err := client.AddOrUpdateSecret(context.Background(), "srv-1", "meta_access_token", "EAAnovo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestRenderEnabled(t *testing.T) {
	assert.False(t, Render{}.Enabled())
	assert.False(t, Render{APIKey: "k"}.Enabled())
	assert.True(t, Render{APIKey: "k", ServiceID: "srv"}.Enabled())
}
