// Package pangea resolves secrets from Pangea Vault over its REST API.
package pangea

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bnema/vaultchat/internal/domain"
	"github.com/bnema/vaultchat/internal/ports"
)

const (
	baseURLTemplate  = "https://vault.%s"
	getBulkPath      = "/v2/get_bulk"
	statusSuccess    = "Success"
	maxResponseBytes = 1 << 20
	defaultUserAgent = "vaultchat"
)

// ErrRequestPending is returned when Pangea accepts the request for
// asynchronous processing. Polling is not supported.
var ErrRequestPending = errors.New("pangea request accepted but still pending")

// APIError is a non-successful Pangea API response.
type APIError struct {
	HTTPStatus int
	Status     string
	Summary    string
	RequestID  string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pangea api error: http %d", e.HTTPStatus)
	if e.Status != "" {
		fmt.Fprintf(&b, ", status %s", e.Status)
	}
	if e.Summary != "" {
		fmt.Fprintf(&b, ": %s", e.Summary)
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, " (request %s)", e.RequestID)
	}
	return b.String()
}

type Store struct {
	token      string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.SecretStore = (*Store)(nil)

type Option func(*Store)

// WithBaseURL replaces the domain-derived service URL.
func WithBaseURL(url string) Option {
	return func(s *Store) { s.baseURL = strings.TrimRight(url, "/") }
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Store) { s.httpClient = client }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func WithUserAgent(userAgent string) Option {
	return func(s *Store) { s.userAgent = userAgent }
}

func NewStore(token string, domain string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("pangea vault token is empty")
	}
	if strings.TrimSpace(domain) == "" {
		return nil, errors.New("pangea domain is empty")
	}

	s := &Store{
		token:      token,
		baseURL:    fmt.Sprintf(baseURLTemplate, strings.TrimSpace(domain)),
		userAgent:  defaultUserAgent,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// FetchLatestVersion issues a single get_bulk call filtered by itemID and
// returns the secret held by the last version of the matched item.
func (s *Store) FetchLatestVersion(ctx context.Context, itemID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	resp, err := s.getBulk(ctx, getBulkRequest{
		Filter: map[string]string{"id": itemID},
		Size:   1,
	})
	if err != nil {
		return "", fmt.Errorf("vault get_bulk %q: %w", itemID, err)
	}
	if resp.Result == nil {
		return "", fmt.Errorf("vault get_bulk %q: %w", itemID, domain.ErrEmptyResult)
	}

	s.logger.DebugContext(ctx, "vault item fetched",
		slog.String("request_id", resp.RequestID),
		slog.Int("items", len(resp.Result.Items)),
		slog.Int("count", resp.Result.Count),
	)

	secret, err := domain.LatestSecret(resp.Result.domainItems())
	if err != nil {
		return "", fmt.Errorf("vault item %q: %w", itemID, err)
	}

	return secret, nil
}

func (s *Store) getBulk(ctx context.Context, body getBulkRequest) (getBulkResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return getBulkResponse{}, fmt.Errorf("encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+getBulkPath, bytes.NewReader(payload))
	if err != nil {
		return getBulkResponse{}, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+s.token)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", s.userAgent)

	s.logger.DebugContext(ctx, "vault request", slog.String("url", request.URL.String()))

	response, err := s.httpClient.Do(request)
	if err != nil {
		return getBulkResponse{}, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return getBulkResponse{}, fmt.Errorf("read response: %w", err)
	}

	var decoded getBulkResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	if response.StatusCode == http.StatusAccepted {
		return getBulkResponse{}, fmt.Errorf("%w (request %s)", ErrRequestPending, decoded.RequestID)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 || (decodeErr == nil && decoded.Status != statusSuccess) {
		apiErr := &APIError{HTTPStatus: response.StatusCode}
		if decodeErr == nil {
			apiErr.Status = decoded.Status
			apiErr.Summary = decoded.Summary
			apiErr.RequestID = decoded.RequestID
		} else {
			apiErr.Summary = strings.TrimSpace(string(raw))
		}
		return getBulkResponse{}, apiErr
	}
	if decodeErr != nil {
		return getBulkResponse{}, fmt.Errorf("decode response: %w", decodeErr)
	}

	return decoded, nil
}
