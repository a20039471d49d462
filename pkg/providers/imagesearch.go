package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kaiseki-io/kaiseki/pkg/config"
)

// ErrNoImageFound is returned when the search backend has no usable hit.
// Callers fall through to synthesis rather than retrying.
var ErrNoImageFound = NewError("image_search", KindPermanent, fmt.Errorf("no image found"))

// HTTPImageSearch queries a JSON-over-HTTP image search backend for a
// representative photo of a dish.
type HTTPImageSearch struct {
	endpoint string
	apiKey   string
	client   *http.Client
	guard    *callGuard
}

var _ ImageFinder = (*HTTPImageSearch)(nil)

// NewHTTPImageSearch creates the search adapter from provider config.
func NewHTTPImageSearch(cfg config.ProviderConfig) *HTTPImageSearch {
	return &HTTPImageSearch{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:   os.Getenv(cfg.APIKeyEnv),
		client:   &http.Client{Timeout: cfg.Timeout + 5*time.Second},
		guard:    newCallGuard("image_search", cfg),
	}
}

type imageSearchResponse struct {
	Results []struct {
		URL         string `json:"url"`
		ContentType string `json:"content_type"`
		Attribution string `json:"attribution"`
	} `json:"results"`
}

// FindImage searches for a dish image by name, preferring results that
// match the category context. Returns ErrNoImageFound when the backend
// responds cleanly with zero results.
func (s *HTTPImageSearch) FindImage(ctx context.Context, name, category, description string) (*ImageResult, error) {
	var result *ImageResult
	err := s.guard.do(ctx, func(ctx context.Context) error {
		q := url.Values{}
		q.Set("query", name)
		if category != "" {
			q.Set("context", category)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"/search?"+q.Encode(), nil)
		if err != nil {
			return NewError("image_search", KindPermanent, fmt.Errorf("failed to create request: %w", err))
		}
		if s.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+s.apiKey)
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return NewError("image_search", classifyCallError(err), fmt.Errorf("request failed: %w", err))
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return NewError("image_search", classifyHTTPStatus(resp.StatusCode),
				fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))))
		}

		var sr imageSearchResponse
		if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
			return NewError("image_search", KindTransient, fmt.Errorf("failed to decode response: %w", err))
		}
		for _, r := range sr.Results {
			if r.URL == "" {
				continue
			}
			result = &ImageResult{URL: r.URL, ContentType: r.ContentType, Attribution: r.Attribution}
			return nil
		}
		return ErrNoImageFound
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
