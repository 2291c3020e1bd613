package did

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
)

var ErrDocumentNotFound = errors.New("DID document not found")

// Resolver resolves a DID into its document.
type Resolver interface {
	Resolve(ctx context.Context, didStr string) (Document, error)
}

// HTTPResolver resolves DID documents through a universal-resolver style HTTP
// endpoint. Every resolution is bounded by a timeout so callers never block
// indefinitely on an unreachable resolver.
type HTTPResolver struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	attempts   uint
}

type HTTPResolverOption func(*HTTPResolver)

func WithHTTPClient(client *http.Client) HTTPResolverOption {
	return func(r *HTTPResolver) {
		r.httpClient = client
	}
}

func WithTimeout(timeout time.Duration) HTTPResolverOption {
	return func(r *HTTPResolver) {
		r.timeout = timeout
	}
}

func WithRetryAttempts(attempts uint) HTTPResolverOption {
	return func(r *HTTPResolver) {
		r.attempts = attempts
	}
}

func NewHTTPResolver(baseURL string, opts ...HTTPResolverOption) *HTTPResolver {
	resolver := &HTTPResolver{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		timeout:    5 * time.Second,
		attempts:   3,
	}
	for _, opt := range opts {
		opt(resolver)
	}
	return resolver
}

func (r *HTTPResolver) Resolve(ctx context.Context, didStr string) (Document, error) {
	if _, err := Parse(didStr); err != nil {
		return Document{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc Document
	err := retry.Do(
		func() error {
			resolved, err := r.resolveOnce(ctx, didStr)
			if err != nil {
				return err
			}
			doc = resolved
			return nil
		},
		retry.Attempts(r.attempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ErrDocumentNotFound)
		}),
	)
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (r *HTTPResolver) resolveOnce(ctx context.Context, didStr string) (Document, error) {
	endpoint := fmt.Sprintf("%s/1.0/identifiers/%s", r.baseURL, url.PathEscape(didStr))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Document{}, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return Document{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Document{}, ErrDocumentNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Document{}, fmt.Errorf("resolver returned %d: %s", resp.StatusCode, string(body))
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode DID document: %w", err)
	}
	return doc, nil
}
