package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/platform/http/middleware"
)

func TestAPIKeyAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := middleware.APIKeyAuth("key")(ok)

	cases := []struct {
		Name     string
		Key      string
		Expected int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "nope", http.StatusUnauthorized},
		{"prefix of valid key", "ke", http.StatusUnauthorized},
		{"valid", "key", http.StatusTeapot},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.Key != "" {
				req.Header.Set("X-API-Key", tc.Key)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.Expected, rec.Code)
		})
	}
}
