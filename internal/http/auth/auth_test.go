package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgervoice/internal/http/auth"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "voice-platform",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestMiddleware(t *testing.T) {
	handler := auth.Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	type testCase struct {
		name       string
		authHeader string
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "ValidToken",
			authHeader: "Bearer " + signToken(t, testSecret),
			wantStatus: http.StatusOK,
		},
		{
			name:       "MissingHeader",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "NotBearer",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "WrongSecret",
			authHeader: "Bearer " + signToken(t, "other-secret"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "GarbageToken",
			authHeader: "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transaction/preview", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
