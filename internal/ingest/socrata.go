package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/hardhatlabs/hardhat/internal/common"
	"github.com/hardhatlabs/hardhat/internal/service"
)

// DefaultDatasetURL is the Chicago Data Portal building-permits endpoint.
const DefaultDatasetURL = "https://data.cityofchicago.org/resource/ydr8-5enu.json"

const (
	defaultPageSize = 5000
	defaultMaxRows  = 20000
)

// SocrataClient pulls a permit snapshot from a Socrata JSON endpoint, newest
// first, one page at a time. Requests are paced to stay inside the portal's
// fair-use limits.
type SocrataClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	datasetURL string
	pageSize   int
	maxRows    int
}

// SocrataOption configures a SocrataClient.
type SocrataOption func(*SocrataClient)

// WithPageSize sets the number of rows fetched per request.
func WithPageSize(n int) SocrataOption {
	return func(c *SocrataClient) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithMaxRows caps the total number of rows fetched. Zero means no cap.
func WithMaxRows(n int) SocrataOption {
	return func(c *SocrataClient) {
		c.maxRows = n
	}
}

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) SocrataOption {
	return func(c *SocrataClient) {
		c.httpClient = hc
	}
}

// NewSocrataClient creates a client for the given dataset endpoint.
func NewSocrataClient(datasetURL string, opts ...SocrataOption) *SocrataClient {
	c := &SocrataClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		datasetURL: datasetURL,
		pageSize:   defaultPageSize,
		maxRows:    defaultMaxRows,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll downloads the snapshot page by page until the endpoint returns an
// empty page or the row cap is reached. onProgress, if non-nil, is called
// with the running row total after each page. A zero-row result is valid.
// Any page that fails after retries makes the whole fetch fail: partial data
// is never returned.
func (c *SocrataClient) FetchAll(ctx context.Context, onProgress func(total int)) ([]RawRow, error) {
	var all []RawRow
	offset := 0

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var page []RawRow
		err := common.WithRetry(ctx, func() error {
			var fetchErr error
			page, fetchErr = c.fetchPage(ctx, offset)
			return fetchErr
		}, service.RetryOptions{MaxAttempts: 3, InitialDelay: 500 * time.Millisecond})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page at offset %d: %w", offset, err)
		}

		if len(page) == 0 {
			break
		}

		all = append(all, page...)
		offset += c.pageSize
		if onProgress != nil {
			onProgress(len(all))
		}

		if c.maxRows > 0 && len(all) >= c.maxRows {
			all = all[:c.maxRows]
			break
		}
	}

	return all, nil
}

func (c *SocrataClient) fetchPage(ctx context.Context, offset int) ([]RawRow, error) {
	params := url.Values{}
	params.Set("$limit", strconv.Itoa(c.pageSize))
	params.Set("$offset", strconv.Itoa(offset))
	params.Set("$order", "issue_date DESC")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.datasetURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, common.ErrRateLimit
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.datasetURL),
			Retryable: resp.StatusCode >= 500,
		}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("failed to decode response: %w", err),
			Retryable: false,
		}
	}

	rows := make([]RawRow, len(records))
	for i, rec := range records {
		rows[i] = flattenRecord(rec)
	}
	return rows, nil
}

// flattenRecord converts a decoded JSON object into a header-keyed row.
// Nested values (the portal's location geometry) are dropped; the pipeline
// only consumes scalar fields.
func flattenRecord(rec map[string]any) RawRow {
	row := make(RawRow, len(rec))
	for k, v := range rec {
		switch val := v.(type) {
		case string:
			row[k] = val
		case json.Number:
			row[k] = val.String()
		case bool:
			row[k] = strconv.FormatBool(val)
		}
	}
	return row
}
