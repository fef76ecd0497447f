package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mcoot/triviaquiz/internal/model"
)

// HTTPConfig configures the remote question API
type HTTPConfig struct {
	BaseURL string
	Amount  int
	Type    string
}

// DefaultHTTPConfig returns the Open Trivia DB settings
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		BaseURL: DefaultURL,
		Amount:  DefaultAmount,
		Type:    DefaultType,
	}
}

// HTTPSource fetches questions from an Open Trivia DB compatible endpoint
type HTTPSource struct {
	cfg        HTTPConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSource creates a new HTTPSource. A nil client uses http.DefaultClient.
func NewHTTPSource(cfg HTTPConfig, client *http.Client, logger *slog.Logger) *HTTPSource {
	def := DefaultHTTPConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Amount <= 0 {
		cfg.Amount = def.Amount
	}
	if cfg.Type == "" {
		cfg.Type = def.Type
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{
		cfg:        cfg,
		httpClient: client,
		logger:     logger,
	}
}

var _ Source = (*HTTPSource)(nil)

// URL returns the request URL including the batch query parameters
func (s *HTTPSource) URL() (string, error) {
	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse questions url: %w", err)
	}
	q := u.Query()
	q.Set("amount", strconv.Itoa(s.cfg.Amount))
	q.Set("type", s.cfg.Type)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch requests one batch. Any transport, status, decode or shape problem
// is returned as an error; there is no retry.
func (s *HTTPSource) Fetch(ctx context.Context) ([]model.Question, error) {
	endpoint, err := s.URL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", model.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", model.ErrFetchFailed, resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", model.ErrMalformedBatch, err)
	}

	if body.ResponseCode != 0 {
		return nil, fmt.Errorf("%w: api response code %d", model.ErrFetchFailed, body.ResponseCode)
	}
	if len(body.Results) != s.cfg.Amount {
		return nil, fmt.Errorf("%w: expected %d questions, got %d", model.ErrMalformedBatch, s.cfg.Amount, len(body.Results))
	}

	out, err := convertAll(body.Results)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("questions fetched",
		slog.String("url", endpoint),
		slog.Int("count", len(out)),
	)
	return out, nil
}
