package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"sales-task-tracker/internal/task"
	"sales-task-tracker/pkg/log"
)

// HTTPSource fetches the seed JSON array from a fixed URL.
type HTTPSource struct {
	url        string
	httpClient *http.Client
	l          log.Logger
}

// NewHTTPSource creates an HTTPSource. A nil client uses http.DefaultClient.
func NewHTTPSource(url string, httpClient *http.Client, l log.Logger) *HTTPSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPSource{url: url, httpClient: httpClient, l: l}
}

// LoadTasks performs GET url and decodes the array body.
func (s *HTTPSource) LoadTasks(ctx context.Context) (any, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build seed request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.l.Warnf(ctx, "seed.LoadTasks: %s returned %d: %s", s.url, resp.StatusCode, string(raw))
		return nil, fmt.Errorf("%w: HTTP %d", task.ErrUnexpectedStatus, resp.StatusCode)
	}

	return decodeArray(resp.Body)
}

// FileSource reads the seed JSON array from disk.
type FileSource struct {
	path string
	l    log.Logger
}

func NewFileSource(path string, l log.Logger) *FileSource {
	return &FileSource{path: path, l: l}
}

func (s *FileSource) LoadTasks(ctx context.Context) (any, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrSourceUnavailable, err)
	}
	defer f.Close()

	s.l.Debugf(ctx, "seed.LoadTasks: reading %s", s.path)
	return decodeArray(f)
}

// decodeArray keeps numbers as json.Number so the normalizer sees exact values.
func decodeArray(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrMalformedPayload, err)
	}
	if _, ok := payload.([]any); !ok {
		return nil, fmt.Errorf("%w: expected a JSON array, got %T", task.ErrMalformedPayload, payload)
	}
	return payload, nil
}
