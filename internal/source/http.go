package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/yourorg/vehicle-dashboard/internal/dataset"
)

// maxCSVBytes guards against runaway downloads.
const maxCSVBytes = 256 << 20

// HTTP downloads a static CSV snapshot.
type HTTP struct {
	url  string
	http *retryablehttp.Client
}

// NewHTTP builds a loader with a small retry budget for the one-time fetch.
func NewHTTP(url string, timeout time.Duration, logger *slog.Logger) *HTTP {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = 3
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil
	if logger != nil {
		rc.Logger = logger
	}
	return &HTTP{url: url, http: rc}
}

func (h *HTTP) Load(ctx context.Context) (*dataset.RawTable, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, dataset.NewLoadError(h.url, "build request", err)
	}
	req.Header.Set("accept", "text/csv")

	resp, err := h.http.Do(req)
	if err != nil {
		return nil, dataset.NewLoadError(h.url, "fetch", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, dataset.NewLoadError(h.url, "fetch", fmt.Errorf("http status %d", resp.StatusCode))
	}
	b, err := ioReadAllLimit(resp.Body, maxCSVBytes)
	if err != nil {
		return nil, dataset.NewLoadError(h.url, "read body", err)
	}
	return ReadCSV(bytes.NewReader(b), h.url)
}

func ioReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}
