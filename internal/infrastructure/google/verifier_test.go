package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/YuvaneshV12/chrono-gift/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchUserinfo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"google-sub-1","email":"Alice@Example.com","name":"Alice","picture":"https://p/img"}`))
	}))
	defer srv.Close()

	v := NewVerifier("", srv.URL)
	p, err := v.Verify(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", p.Sub)
	assert.Equal(t, "Alice@Example.com", p.Email)
	assert.Equal(t, "Alice", p.Name)
}

func TestFetchUserinfo_ProviderRejectsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	v := NewVerifier("", srv.URL)
	_, err := v.Verify(context.Background(), "expired")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestFetchUserinfo_MissingSub(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"email":"a@b.com"}`))
	}))
	defer srv.Close()

	v := NewVerifier("", srv.URL)
	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestFetchUserinfo_ProviderUnreachable(t *testing.T) {
	v := NewVerifier("", "http://127.0.0.1:1")
	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}
