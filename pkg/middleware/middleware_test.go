package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, method jwt.SigningMethod, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ContextKeyClaims).(*jwt.RegisteredClaims)
		assert.True(t, ok)
		assert.Equal(t, "ops", claims.Subject)
		w.WriteHeader(http.StatusAccepted)
	})

	tests := []struct {
		name     string
		secret   string
		header   string
		expected int
	}{
		{
			name:     "Token válido",
			secret:   "s3cr3t",
			header:   "Bearer " + signToken(t, "s3cr3t", jwt.SigningMethodHS256, time.Hour),
			expected: http.StatusAccepted,
		},
		{
			name:     "Sem cabeçalho",
			secret:   "s3cr3t",
			expected: http.StatusUnauthorized,
		},
		{
			name:     "Sem prefixo Bearer",
			secret:   "s3cr3t",
			header:   signToken(t, "s3cr3t", jwt.SigningMethodHS256, time.Hour),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "Assinado com outro segredo",
			secret:   "s3cr3t",
			header:   "Bearer " + signToken(t, "outro", jwt.SigningMethodHS256, time.Hour),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "Token expirado",
			secret:   "s3cr3t",
			header:   "Bearer " + signToken(t, "s3cr3t", jwt.SigningMethodHS256, -time.Hour),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "Algoritmo diferente de HS256",
			secret:   "s3cr3t",
			header:   "Bearer " + signToken(t, "s3cr3t", jwt.SigningMethodHS512, time.Hour),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "Segredo não configurado",
			header:   "Bearer qualquer",
			expected: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/extraction/run", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.secret)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
