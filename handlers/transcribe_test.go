package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

func transcribeApp(h *TranscribeHandler) *fiber.App {
	app := fiber.New()
	app.All("/api/transcribe", h.Handle)
	return app
}

func multipartBody(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "audio.webm")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake-audio-bytes")); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteField("model", "whisper-1"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestTranscribeForwardsToUpstream(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody []byte
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"gastei cinquenta reais no mercado"}`))
	}))
	defer upstream.Close()

	h := NewTranscribeHandler("test-key", upstream.URL, zerolog.Nop())
	app := transcribeApp(h)

	body, contentType := multipartBody(t)
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	respBody, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(respBody), "gastei cinquenta reais") {
		t.Errorf("body = %s", respBody)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("upstream auth = %q", gotAuth)
	}
	if gotContentType != contentType {
		t.Errorf("upstream content-type = %q, want %q", gotContentType, contentType)
	}
	if !bytes.Contains(gotBody, []byte("fake-audio-bytes")) {
		t.Error("upstream did not receive the multipart body")
	}
}

func TestTranscribeWrapsUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Incorrect API key provided"))
	}))
	defer upstream.Close()

	h := NewTranscribeHandler("bad-key", upstream.URL, zerolog.Nop())
	app := transcribeApp(h)

	body, contentType := multipartBody(t)
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 passed through", resp.StatusCode)
	}
	respBody, _ := io.ReadAll(resp.Body)
	if got := strings.TrimSpace(string(respBody)); got != `{"error":"Incorrect API key provided"}` {
		t.Errorf("body = %s, want upstream text wrapped in {\"error\"}", got)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content-type = %q, want application/json", ct)
	}
}

func TestTranscribeNonJSONSuccessBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text, not json"))
	}))
	defer upstream.Close()

	h := NewTranscribeHandler("test-key", upstream.URL, zerolog.Nop())
	app := transcribeApp(h)

	body, contentType := multipartBody(t)
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	respBody, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(respBody), `"error"`) {
		t.Errorf("body = %s, want an error field", respBody)
	}
}

func TestTranscribeMissingKey(t *testing.T) {
	h := NewTranscribeHandler("", "http://unused", zerolog.Nop())
	app := transcribeApp(h)

	body, contentType := multipartBody(t)
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	respBody, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(respBody), "OPENAI_KEY not configured") {
		t.Errorf("body = %s", respBody)
	}
}

func TestTranscribePreflight(t *testing.T) {
	h := NewTranscribeHandler("test-key", "http://unused", zerolog.Nop())
	app := transcribeApp(h)

	req := httptest.NewRequest(http.MethodOptions, "/api/transcribe", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if origin := resp.Header.Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("allow-origin = %q, want *", origin)
	}
}

func TestTranscribeRejectsOtherMethods(t *testing.T) {
	h := NewTranscribeHandler("test-key", "http://unused", zerolog.Nop())
	app := transcribeApp(h)

	req := httptest.NewRequest(http.MethodGet, "/api/transcribe", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}
