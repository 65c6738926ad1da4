package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"carpetgen/internal/catalog"
	"carpetgen/internal/generator"
	"carpetgen/internal/http/handlers"

	"github.com/rs/zerolog"
)

type staticProber struct {
	status int
}

func (p staticProber) ImageURL(prompt string) string {
	return "https://img.test/prompt/" + url.PathEscape(prompt)
}

func (p staticProber) Probe(ctx context.Context, imageURL string) (int, error) {
	return p.status, nil
}

func newTestRouter(status int) http.Handler {
	cat := catalog.Default()
	svc := generator.NewService(cat, staticProber{status: status}, zerolog.Nop())
	app := handlers.NewApp(cat, svc, zerolog.Nop())
	return NewRouter(app, zerolog.Nop())
}

func TestRoutes(t *testing.T) {
	router := newTestRouter(http.StatusOK)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{method: http.MethodGet, path: "/", want: http.StatusOK},
		{method: http.MethodGet, path: "/health", want: http.StatusOK},
		{method: http.MethodGet, path: "/options", want: http.StatusOK},
		{
			method: http.MethodPost,
			path:   "/generate",
			body:   `{"design_style":"Tabriz","color_palette":"Mystical Journey","motif":"Buta"}`,
			want:   http.StatusOK,
		},
		{
			method: http.MethodGet,
			path:   "/generate-image?design_pattern=Shirvan&color_palette=Earth+Tones&motif=Buta",
			want:   http.StatusOK,
		},
		{
			method: http.MethodGet,
			path:   "/generate-image?design_pattern=Shirvan&color_palette=NoSuchPalette&motif=Buta",
			want:   http.StatusBadRequest,
		},
		{method: http.MethodGet, path: "/no-such-route", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d, body %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	router := newTestRouter(http.StatusOK)

	body := `{"design_style":"Tabriz","color_palette":"Mystical Journey","motif":"Buta","additional_details":""}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var res generator.Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Message != "Carpet design generated successfully" {
		t.Errorf("message = %q", res.Message)
	}
	for _, want := range []string{"Tabriz", "paisley"} {
		if !strings.Contains(res.ImageURL, want) {
			t.Errorf("image_url missing %q: %s", want, res.ImageURL)
		}
	}
}

func TestCORSHeaders(t *testing.T) {
	router := newTestRouter(http.StatusOK)

	req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
	req.Header.Set("Origin", "https://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	router := newTestRouter(http.StatusOK)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "test-rid-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "test-rid-1" {
		t.Errorf("X-Request-ID = %q, want echo of inbound value", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing minted X-Request-ID")
	}
}
