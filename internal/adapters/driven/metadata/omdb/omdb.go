// Package omdb provides a movie metadata adapter using the public OMDb API
// (http://www.omdbapi.com/).
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
)

// Ensure MetadataService implements the interface.
var _ driven.MetadataService = (*MetadataService)(nil)

// Default configuration values. OMDb free-tier keys are heavily
// rate-limited per day, so requests are throttled client-side too.
const (
	DefaultBaseURL = "https://www.omdbapi.com/"
	DefaultTimeout = 15 * time.Second

	requestsPerSecond = 1
	requestBurst      = 3
)

// Config holds configuration for the OMDb metadata service.
type Config struct {
	// APIKey is the OMDb API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://www.omdbapi.com/).
	BaseURL string

	// Timeout is the request timeout (default: 15s).
	Timeout time.Duration
}

// MetadataService queries the OMDb API for movie metadata.
type MetadataService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// omdbRecord is the OMDb single-title response format. OMDb signals misses
// in-band with Response=False rather than with HTTP status codes.
type omdbRecord struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	IMDBRating string `json:"imdbRating"`
	Plot       string `json:"Plot"`
}

// omdbSearchResponse is the OMDb keyword-search response format.
type omdbSearchResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Search   []struct {
		Title string `json:"Title"`
		Year  string `json:"Year"`
	} `json:"Search"`
}

// NewMetadataService creates a new OMDb metadata service.
func NewMetadataService(cfg Config) (*MetadataService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("omdb: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &MetadataService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(requestsPerSecond, requestBurst),
	}, nil
}

// Lookup fetches full metadata for a title.
func (s *MetadataService) Lookup(ctx context.Context, title string) (*driven.MovieMetadata, error) {
	params := url.Values{}
	params.Set("t", title)
	params.Set("plot", "full")

	var record omdbRecord
	if err := s.get(ctx, params, &record); err != nil {
		return nil, err
	}
	if record.Response == "False" {
		return nil, domain.ErrNotFound
	}

	return &driven.MovieMetadata{
		Title:    record.Title,
		Year:     record.Year,
		Genre:    record.Genre,
		Director: record.Director,
		Actors:   record.Actors,
		Rating:   record.IMDBRating,
		Plot:     record.Plot,
	}, nil
}

// Search finds titles matching a keyword.
func (s *MetadataService) Search(ctx context.Context, keyword string) ([]driven.MetadataSearchHit, error) {
	params := url.Values{}
	params.Set("s", keyword)

	var result omdbSearchResponse
	if err := s.get(ctx, params, &result); err != nil {
		return nil, err
	}
	if result.Response == "False" || len(result.Search) == 0 {
		return nil, domain.ErrNotFound
	}

	hits := make([]driven.MetadataSearchHit, len(result.Search))
	for i, hit := range result.Search {
		hits[i] = driven.MetadataSearchHit{Title: hit.Title, Year: hit.Year}
	}
	return hits, nil
}

// get performs one throttled API request and decodes the JSON body into out.
func (s *MetadataService) get(ctx context.Context, params url.Values, out any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("omdb: rate limit wait: %w", err)
	}

	params.Set("apikey", s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("omdb: create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("omdb: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", domain.ErrMetadataUnavailable, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("omdb: decode response: %w", err)
	}
	return nil
}
