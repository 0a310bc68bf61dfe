package handlers

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardkeeper/internal/cardparse"
	"github.com/iudanet/cardkeeper/internal/ocr"
	"github.com/iudanet/cardkeeper/internal/scan"
	"github.com/iudanet/cardkeeper/pkg/api"
)

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 40, 20))
	for i := range img.Pix {
		img.Pix[i] = 240
	}
	for x := 5; x < 35; x++ {
		img.SetGray(x, 10, color.Gray{Y: 10})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestScanHandler_Scan(t *testing.T) {
	pipeline := scan.NewPipeline(&ocr.Static{
		Text:       "山田 太郎\n株式会社サンプル\nyamada@sample.co.jp",
		Confidence: 0.9,
	}, setupTestLogger())
	handler := NewScanHandler(setupTestLogger(), pipeline)

	req := multipartRequest(t, "/api/scan", "image/png", testPNG(t), nil)
	w := httptest.NewRecorder()

	handler.Scan(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var report api.ScanReport
	resp := decodeResponse(t, w, &report)
	assert.True(t, resp.Success)
	assert.True(t, report.Recognized)
	assert.Equal(t, "static", report.Engine)
	assert.Equal(t, "山田 太郎", report.Fields.Name)
	assert.Equal(t, "株式会社サンプル", report.Fields.Company)
	assert.Equal(t, cardparse.LevelHigh, report.Levels[cardparse.FieldEmail])
	assert.NotEmpty(t, report.Candidates)
}

func TestScanHandler_Scan_Errors(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		contentType string
		scanErr     error
		wantCode    int
		wantError   string
	}{
		{
			name:        "unsupported type",
			data:        []byte("GIF89a......"),
			contentType: "image/gif",
			wantCode:    http.StatusUnsupportedMediaType,
			wantError:   "unsupported image type",
		},
		{
			name:        "unreadable",
			data:        []byte("\x89PNG\r\n\x1a\nbroken"),
			contentType: "image/png",
			scanErr:     fmt.Errorf("%w: bad header", scan.ErrUnreadableImage),
			wantCode:    http.StatusUnsupportedMediaType,
			wantError:   "unreadable image",
		},
		{
			name:        "too many pixels",
			data:        []byte("\x89PNG\r\n\x1a\n"),
			contentType: "image/png",
			scanErr:     scan.ErrImageTooLarge,
			wantCode:    http.StatusRequestEntityTooLarge,
			wantError:   "image dimensions are too large",
		},
		{
			name:        "engine failure",
			data:        []byte("\x89PNG\r\n\x1a\n"),
			contentType: "image/png",
			scanErr:     fmt.Errorf("failed to recognize image: %w", assert.AnError),
			wantCode:    http.StatusInternalServerError,
			wantError:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := &ScannerMock{
				ScanFunc: func(context.Context, []byte) (*scan.Report, error) {
					return nil, tt.scanErr
				},
			}
			handler := NewScanHandler(setupTestLogger(), scanner)

			req := multipartRequest(t, "/api/scan", tt.contentType, tt.data, nil)
			w := httptest.NewRecorder()

			handler.Scan(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decodeResponse(t, w, nil)
			assert.Equal(t, tt.wantError, resp.Error)
			if tt.scanErr == nil {
				assert.Empty(t, scanner.ScanCalls())
			}
		})
	}
}

func TestScanHandler_Disabled(t *testing.T) {
	handler := NewScanHandler(setupTestLogger(), nil)

	req := multipartRequest(t, "/api/scan", "image/png", testPNG(t), nil)
	w := httptest.NewRecorder()

	handler.Scan(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)

	// разбор текста доступен без OCR
	req = httptest.NewRequest(http.MethodPost, "/api/scan/parse",
		strings.NewReader(`{"text":"John Smith\nExample Inc.\njohn@example.com"}`))
	w = httptest.NewRecorder()

	handler.Parse(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var parsed api.ParseResponse
	decodeResponse(t, w, &parsed)
	assert.Equal(t, "John Smith", parsed.Fields.Name)
	assert.Equal(t, "Example Inc.", parsed.Fields.Company)
	assert.Equal(t, "john@example.com", parsed.Fields.Email)
	assert.Equal(t, cardparse.LevelHigh, parsed.Levels[cardparse.FieldEmail])
	assert.Greater(t, parsed.Score, 0.0)
}

func TestScanHandler_Parse_Invalid(t *testing.T) {
	handler := NewScanHandler(setupTestLogger(), nil)

	for _, body := range []string{`{"text":"  "}`, `{}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/scan/parse", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Parse(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}
