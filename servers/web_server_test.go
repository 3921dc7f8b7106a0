package servers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAliveHandler(t *testing.T) {
	for _, path := range []string{"/", "/health"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()

			aliveHandler(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			body, _ := io.ReadAll(rec.Body)
			if string(body) != "alive" {
				t.Fatalf("expected body %q, got %q", "alive", body)
			}
		})
	}
}
