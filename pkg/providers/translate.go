package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kaiseki-io/kaiseki/pkg/config"
)

// HTTPTranslator calls a JSON-over-HTTP translation service. Both the
// primary and secondary translation backends use this adapter; only the
// endpoint, credentials, and rate bucket differ.
type HTTPTranslator struct {
	name     string
	endpoint string
	apiKey   string
	client   *http.Client
	guard    *callGuard
}

var _ Translator = (*HTTPTranslator)(nil)

// NewHTTPTranslator creates a translation adapter from provider config.
// The API key is resolved from the configured environment variable at
// construction time, not per call.
func NewHTTPTranslator(name string, cfg config.ProviderConfig) *HTTPTranslator {
	return &HTTPTranslator{
		name:     name,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:   os.Getenv(cfg.APIKeyEnv),
		client:   &http.Client{Timeout: cfg.Timeout + 5*time.Second},
		guard:    newCallGuard(name, cfg),
	}
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Text         string `json:"text"`
	DetectedLang string `json:"detected_lang"`
}

// Translate sends a single text for translation.
func (t *HTTPTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (*TranslateResult, error) {
	var result *TranslateResult
	err := t.guard.do(ctx, func(ctx context.Context) error {
		body, err := json.Marshal(translateRequest{
			Text:       text,
			SourceLang: sourceLang,
			TargetLang: targetLang,
		})
		if err != nil {
			return NewError(t.name, KindPermanent, fmt.Errorf("failed to encode request: %w", err))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint+"/translate", bytes.NewReader(body))
		if err != nil {
			return NewError(t.name, KindPermanent, fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		if t.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+t.apiKey)
		}

		resp, err := t.client.Do(req)
		if err != nil {
			return NewError(t.name, classifyCallError(err), fmt.Errorf("request failed: %w", err))
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return NewError(t.name, classifyHTTPStatus(resp.StatusCode),
				fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))))
		}

		var tr translateResponse
		if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
			return NewError(t.name, KindTransient, fmt.Errorf("failed to decode response: %w", err))
		}
		if tr.Text == "" {
			return NewError(t.name, KindTransient, fmt.Errorf("empty translation for %q", text))
		}
		result = &TranslateResult{Text: tr.Text, DetectedLang: tr.DetectedLang}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
