package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// TranscribeHandler relays multipart audio uploads to a speech-to-text
// upstream. The request body is forwarded verbatim; upstream failures keep
// their status but the body is wrapped as {"error": ...} so clients always
// get a uniform JSON shape.
type TranscribeHandler struct {
	APIKey      string
	UpstreamURL string
	Client      *http.Client
	Log         zerolog.Logger
}

func NewTranscribeHandler(apiKey, upstreamURL string, log zerolog.Logger) *TranscribeHandler {
	return &TranscribeHandler{
		APIKey:      apiKey,
		UpstreamURL: upstreamURL,
		Client:      &http.Client{Timeout: 60 * time.Second},
		Log:         log,
	}
}

func (t *TranscribeHandler) Handle(c *fiber.Ctx) error {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type")

	switch c.Method() {
	case fiber.MethodOptions:
		return c.SendStatus(fiber.StatusOK)
	case fiber.MethodPost:
	default:
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
	}

	if t.APIKey == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "OPENAI_KEY not configured"})
	}

	req, err := http.NewRequestWithContext(c.Context(), http.MethodPost, t.UpstreamURL, bytes.NewReader(c.Body()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build upstream request"})
	}
	req.Header.Set("Authorization", "Bearer "+t.APIKey)
	req.Header.Set("Content-Type", c.Get("Content-Type"))

	resp, err := t.Client.Do(req)
	if err != nil {
		t.Log.Error().Err(err).Msg("transcription upstream unreachable")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Transcription service unavailable"})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Log.Error().Err(err).Msg("transcription response read failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Transcription service unavailable"})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.Status(resp.StatusCode).JSON(fiber.Map{"error": string(body)})
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Log.Error().Err(err).Msg("transcription response not json")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"text": parsed.Text})
}
