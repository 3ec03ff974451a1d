package richdoc

import (
	"context"
	"fmt"
	"net/http"
)

// HTTPImportRequest configures HTTPImport.
type HTTPImportRequest struct {
	URL     string
	Client  *http.Client
	Options []Option
}

// HTTPImport fetches Markdown over HTTP(S) and imports it. The context
// bounds the fetch only.
func HTTPImport(ctx context.Context, req HTTPImportRequest) (*Document, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("http import: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("http import: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("http import: unsupported scheme %q", httpReq.URL.Scheme)
	}
	httpReq.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http import: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("http import: status %s", resp.Status)
	}
	doc, err := Import(ImportRequest{Reader: resp.Body, Options: req.Options})
	if err != nil {
		return nil, fmt.Errorf("http import: %w", err)
	}
	return doc, nil
}
