package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"book-curator/backend/internal/breaker"
	"book-curator/backend/internal/logging"
	"book-curator/backend/internal/metrics"
	"book-curator/backend/internal/model"

	"github.com/goccy/go-json"
)

const (
	// DefaultBaseURL is the Aladin TTB API root
	DefaultBaseURL = "http://www.aladin.co.kr/ttb/api"
	// DefaultQueryType is used when a search names none
	DefaultQueryType = "Keyword"

	apiVersion     = "20131101"
	maxResultsCap  = 50
	defaultTimeout = 10 * time.Second
	serviceName    = "catalog"
)

var (
	// ErrMissingAPIKey is returned by NewClient when no TTB key is configured.
	ErrMissingAPIKey = errors.New("aladin API key is not set")

	// errRejected marks answers the catalog gave deliberately (4xx, error envelopes).
	// They do not count against the circuit breaker.
	errRejected = errors.New("catalog rejected request")
)

// Config holds configuration for the catalog client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the Aladin item search/list/lookup APIs.
// Every method returns a non-nil result; failures are reported in result.Error.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	breaker    *breaker.Breaker
}

// NewClient creates a new catalog client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: breaker.New("aladin-api", breaker.Settings{
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, errRejected) || errors.Is(err, context.Canceled)
			},
		}),
	}, nil
}

// SearchParams describes an ItemSearch call.
type SearchParams struct {
	Query      string
	QueryType  string // Keyword, Title, Author, Publisher
	MaxResults int
	Start      int
	CategoryID int
}

// Search runs a keyword/title/author/publisher search.
func (c *Client) Search(ctx context.Context, p SearchParams) *model.CatalogResult {
	queryType := p.QueryType
	if queryType == "" {
		queryType = DefaultQueryType
	}
	start := p.Start
	if start < 1 {
		start = 1
	}

	params := c.listParams(p.MaxResults)
	params.Set("Query", p.Query)
	params.Set("QueryType", queryType)
	params.Set("start", strconv.Itoa(start))
	if p.CategoryID > 0 {
		params.Set("CategoryId", strconv.Itoa(p.CategoryID))
	}

	return c.fetch(ctx, "search", "ItemSearch.aspx", params)
}

// Bestsellers lists current bestsellers. categoryID 0 means all categories.
func (c *Client) Bestsellers(ctx context.Context, categoryID, maxResults int) *model.CatalogResult {
	return c.list(ctx, "Bestseller", categoryID, maxResults)
}

// NewReleases lists new releases. categoryID 0 means all categories.
func (c *Client) NewReleases(ctx context.Context, categoryID, maxResults int) *model.CatalogResult {
	return c.list(ctx, "ItemNewAll", categoryID, maxResults)
}

// Lookup fetches a single item by ISBN13 or Aladin item ID.
func (c *Client) Lookup(ctx context.Context, itemID string) *model.CatalogResult {
	idType := "ItemId"
	if len(itemID) == 13 {
		idType = "ISBN13"
	}

	params := url.Values{}
	params.Set("ttbkey", c.apiKey)
	params.Set("itemIdType", idType)
	params.Set("ItemId", itemID)
	params.Set("output", "js")
	params.Set("Version", apiVersion)
	params.Set("Cover", "Big")
	params.Set("OptResult", "ebookList,usedList,reviewList")

	return c.fetch(ctx, "lookup", "ItemLookUp.aspx", params)
}

func (c *Client) list(ctx context.Context, queryType string, categoryID, maxResults int) *model.CatalogResult {
	params := c.listParams(maxResults)
	params.Set("QueryType", queryType)
	params.Set("start", "1")
	if categoryID > 0 {
		params.Set("CategoryId", strconv.Itoa(categoryID))
	}
	return c.fetch(ctx, "list", "ItemList.aspx", params)
}

func (c *Client) listParams(maxResults int) url.Values {
	if maxResults > maxResultsCap {
		maxResults = maxResultsCap
	}
	if maxResults < 1 {
		maxResults = 1
	}

	params := url.Values{}
	params.Set("ttbkey", c.apiKey)
	params.Set("MaxResults", strconv.Itoa(maxResults))
	params.Set("SearchTarget", "Book")
	params.Set("output", "js")
	params.Set("Version", apiVersion)
	params.Set("Cover", "Big")
	return params
}

func (c *Client) fetch(ctx context.Context, op, endpoint string, params url.Values) *model.CatalogResult {
	start := time.Now()
	result, err := breaker.Do(c.breaker, func() (*model.CatalogResult, error) {
		return c.get(ctx, endpoint, params)
	})
	metrics.UpstreamDuration.WithLabelValues(serviceName).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(serviceName, outcome(err)).Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("op", op).Msg("[CATALOG] Request failed")
		return model.FailedResult(err)
	}
	metrics.UpstreamRequests.WithLabelValues(serviceName, "success").Inc()

	if result.Item == nil {
		result.Item = []model.Book{}
	}
	logging.Ctx(ctx).Debug().
		Str("op", op).
		Int("items", len(result.Item)).
		Dur("took", time.Since(start)).
		Msg("[CATALOG] Request completed")
	return result
}

// aladinResponse adds the error envelope Aladin returns with a 200 status.
type aladinResponse struct {
	model.CatalogResult
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*model.CatalogResult, error) {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL, which includes the TTB key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, fmt.Errorf("%w: unexpected status code: %d", errRejected, resp.StatusCode)
		}
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var out aladinResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if out.ErrorCode != 0 {
		return nil, fmt.Errorf("%w: aladin error %d: %s", errRejected, out.ErrorCode, out.ErrorMessage)
	}

	return &out.CatalogResult, nil
}

func outcome(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, breaker.ErrOpen):
		return "circuit_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	default:
		return "upstream"
	}
}
