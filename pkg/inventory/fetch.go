package inventory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lparsum/pkg/logging"

	"github.com/dustin/go-humanize"
)

// Immutable
var httpClient = &http.Client{
	Timeout: 0, // Handled by context
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetch streams the body of an http(s) inventory. The caller closes it.
func fetch(ctx context.Context, client *http.Client, uri string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch inventory %s: bad status: %s", uri, resp.Status)
	}

	size := "unknown size"
	if resp.ContentLength >= 0 {
		size = humanize.Bytes(uint64(resp.ContentLength))
	}
	logging.Component("inventory").Debug("Fetching inventory", "url", uri, "size", size)
	return &countingReader{ReadCloser: resp.Body, uri: uri}, nil
}

// Mutable
type countingReader struct {
	io.ReadCloser
	uri  string
	read int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.ReadCloser.Read(p)
	c.read += int64(n)
	return n, err
}

func (c *countingReader) Close() error {
	logging.Component("inventory").Debug("Fetched inventory", "url", c.uri, "read", humanize.Bytes(uint64(c.read)))
	return c.ReadCloser.Close()
}
