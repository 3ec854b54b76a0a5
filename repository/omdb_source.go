package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/screenlog/movie-catalog-backend/domain"
)

type omdbSource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewOMDBSource creates a metadata source backed by the OMDb HTTP API.
func NewOMDBSource(baseURL, apiKey string, timeout time.Duration) domain.MovieSource {
	return &omdbSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// searchEnvelope is the OMDb search response. OMDb signals success in-band
// with the Response field rather than the HTTP status.
type searchEnvelope struct {
	Search   []map[string]interface{} `json:"Search"`
	Response string                   `json:"Response"`
	Error    string                   `json:"Error"`
}

// Search fetches one page of summary results. A page with no matches is an
// empty result, not an error; only transport failures and non-200 statuses
// are reported.
func (s *omdbSource) Search(ctx context.Context, keyword string, page int) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("s", keyword)
	params.Set("type", "movie")
	params.Set("page", strconv.Itoa(page))

	body, err := s.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var envelope searchEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding search response: %v", domain.ErrUpstreamFetch, err)
	}
	return envelope.Search, nil
}

// Lookup fetches the full-detail record for a title.
func (s *omdbSource) Lookup(ctx context.Context, title string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("t", title)
	params.Set("type", "movie")

	body, err := s.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding lookup response: %v", domain.ErrUpstreamFetch, err)
	}
	if response, _ := payload["Response"].(string); response != "True" {
		return nil, domain.ErrUpstreamNoMatch
	}

	delete(payload, "Response")
	return payload, nil
}

func (s *omdbSource) get(ctx context.Context, params url.Values) ([]byte, error) {
	params.Set("apikey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", domain.ErrUpstreamFetch, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", domain.ErrUpstreamFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrUpstreamFetch, err)
	}
	return body, nil
}
