package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	Register(mux)

	tests := []struct {
		path        string
		wantCode    int
		contentType string
		contains    string
	}{
		{"/", http.StatusOK, "text/html", "<title>cardkeeper</title>"},
		{"/static/app.js", http.StatusOK, "javascript", "/api/business-cards"},
		{"/static/style.css", http.StatusOK, "text/css", ".card"},
		{"/static/missing.js", http.StatusNotFound, "", ""},
		{"/unknown", http.StatusNotFound, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.wantCode, w.Code)
			if tt.contentType != "" {
				assert.Contains(t, w.Header().Get("Content-Type"), tt.contentType)
			}
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}
