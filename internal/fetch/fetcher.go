package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"codeberg.org/snonux/imagelabel/internal"
)

// ErrMissingURL is returned when no image URL was supplied
var ErrMissingURL = errors.New("image URL is empty")

// Options configures image download behavior
type Options struct {
	Timeout      time.Duration // Whole-request timeout (0 = client default, no limit)
	MaxSizeBytes int64         // Maximum body size to accept (0 = no limit)
	UserAgent    string        // User-Agent header sent with the request
}

// DefaultOptions returns sensible defaults for image downloads
func DefaultOptions() *Options {
	return &Options{
		Timeout:      30 * time.Second,
		MaxSizeBytes: 10 * 1024 * 1024, // 10MB
		UserAgent:    "imagelabel/" + internal.Version,
	}
}

// FetchError describes a failed image download
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher downloads raw image bytes over HTTP
type Fetcher struct {
	client  *http.Client
	options *Options
}

// NewFetcher creates a new image fetcher
func NewFetcher(options *Options) *Fetcher {
	if options == nil {
		options = DefaultOptions()
	}

	client := cleanhttp.DefaultPooledClient()
	client.Timeout = options.Timeout

	return &Fetcher{
		client:  client,
		options: options,
	}
}

// Fetch performs one GET request and returns the response body
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, &FetchError{URL: url, Err: ErrMissingURL}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	if f.options.UserAgent != "" {
		req.Header.Set("User-Agent", f.options.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := f.readBody(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	return data, nil
}

func (f *Fetcher) readBody(body io.Reader) ([]byte, error) {
	if f.options.MaxSizeBytes <= 0 {
		data, err := io.ReadAll(body)
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}
		return data, nil
	}

	// Read one byte past the limit to detect oversized images
	data, err := io.ReadAll(io.LimitReader(body, f.options.MaxSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(data)) > f.options.MaxSizeBytes {
		return nil, fmt.Errorf("image exceeds maximum size of %d bytes", f.options.MaxSizeBytes)
	}

	return data, nil
}
