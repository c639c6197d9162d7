// Package news searches recent articles about a company or risk scenario on NewsAPI.ai.
package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"riskmai/internal/config"
	"riskmai/internal/gateway"
	"riskmai/internal/model"
)

const dependencyName = "news"

// Query describes one news search. Text is the keyword sent to the provider.
type Query struct {
	Text        string
	CompanyName string
	RiskType    string
	DaysBack    int
}

// Searcher is the news gateway consumed by the analysis pipeline.
type Searcher interface {
	Search(ctx context.Context, q Query) (*model.NewsResult, error)
	CompanyNews(ctx context.Context, companyName string) (*model.NewsResult, error)
	RiskNews(ctx context.Context, description, riskType, companyName string) (*model.NewsResult, error)
}

// Client talks to NewsAPI.ai. Without an API key it serves deterministic mock articles.
type Client struct {
	http          *http.Client
	limiter       *rate.Limiter
	apiKey        string
	baseURL       string
	daysBack      int
	articlesCount int
	mockOnError   bool
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the traced default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// NewClient builds a Client from cfg.
func NewClient(cfg config.NewsConfig, opts ...Option) *Client {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	c := &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		limiter:       rate.NewLimiter(limit, 1),
		apiKey:        cfg.APIKey,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		daysBack:      cfg.DaysBack,
		articlesCount: cfg.ArticlesCount,
		mockOnError:   cfg.MockOnError,
	}
	if c.daysBack <= 0 {
		c.daysBack = 30
	}
	if c.articlesCount <= 0 {
		c.articlesCount = 20
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		zap.L().Warn("NEWS_API_KEY not set, news searches return mock data")
	}
	return c
}

var _ Searcher = (*Client)(nil)

// CompanyNews searches news about the company itself.
func (c *Client) CompanyNews(ctx context.Context, companyName string) (*model.NewsResult, error) {
	return c.Search(ctx, Query{Text: companyName, CompanyName: companyName})
}

// RiskNews searches news matching a risk scenario description.
func (c *Client) RiskNews(ctx context.Context, description, riskType, companyName string) (*model.NewsResult, error) {
	return c.Search(ctx, Query{Text: description, CompanyName: companyName, RiskType: riskType})
}

// Search runs q against the provider. Provider failures either fall back to mock data or
// are returned as *gateway.DependencyError, depending on the MockOnError setting.
func (c *Client) Search(ctx context.Context, q Query) (*model.NewsResult, error) {
	if c.apiKey == "" {
		return MockResult(q, mockNote), nil
	}

	res, err := c.fetch(ctx, q)
	if err == nil {
		return res, nil
	}

	zap.L().Warn("news search failed",
		zap.String("query", q.Text),
		zap.Bool("mock_fallback", c.mockOnError),
		zap.Error(err),
	)
	if c.mockOnError {
		return MockResult(q, "Using mock data after news provider error: "+err.Error()), nil
	}
	return nil, gateway.NewDependencyError(dependencyName, err)
}

type searchRequest struct {
	Action                 string   `json:"action"`
	Keyword                string   `json:"keyword"`
	IgnoreSourceGroupURI   string   `json:"ignoreSourceGroupUri"`
	ArticlesPage           int      `json:"articlesPage"`
	ArticlesCount          int      `json:"articlesCount"`
	ArticlesSortBy         string   `json:"articlesSortBy"`
	ArticlesSortByAsc      bool     `json:"articlesSortByAsc"`
	DataType               []string `json:"dataType"`
	ForceMaxDataTimeWindow int      `json:"forceMaxDataTimeWindow"`
	ResultType             string   `json:"resultType"`
	APIKey                 string   `json:"apiKey"`
}

type searchResponse struct {
	Articles struct {
		Results []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Body        string `json:"body"`
			URL         string `json:"url"`
			DateTime    string `json:"dateTime"`
			Source      struct {
				Title string `json:"title"`
			} `json:"source"`
			Sentiment any `json:"sentiment"`
		} `json:"results"`
	} `json:"articles"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) fetch(ctx context.Context, q Query) (*model.NewsResult, error) {
	daysBack := q.DaysBack
	if daysBack <= 0 {
		daysBack = c.daysBack
	}
	body, err := json.Marshal(searchRequest{
		Action:                 "getArticles",
		Keyword:                q.Text,
		IgnoreSourceGroupURI:   "paywall/paywalled_sources",
		ArticlesPage:           1,
		ArticlesCount:          c.articlesCount,
		ArticlesSortBy:         "date",
		DataType:               []string{"news", "pr"},
		ForceMaxDataTimeWindow: daysBack,
		ResultType:             "articles",
		APIKey:                 c.apiKey,
	})
	if err != nil {
		return nil, eris.Wrap(err, "encode news request")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "news rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/article/getArticles", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "build news request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "news request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, eris.Errorf("news provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, eris.Wrap(err, "decode news response")
	}

	articles := make([]model.NewsArticle, 0, len(sr.Articles.Results))
	for _, a := range sr.Articles.Results {
		articles = append(articles, model.NewsArticle{
			Title:         a.Title,
			Description:   a.Description,
			Content:       a.Body,
			URL:           a.URL,
			Source:        a.Source.Title,
			PublishedDate: a.DateTime,
			Sentiment:     sentimentLabel(a.Sentiment),
		})
	}

	ts := sr.Timestamp
	if ts == "" {
		ts = time.Now().UTC().Format(time.RFC3339)
	}
	return &model.NewsResult{
		Articles:     articles,
		TotalResults: len(articles),
		Query:        q.Text,
		CompanyName:  q.CompanyName,
		SearchMetadata: model.SearchMetadata{
			APIVersion: "v1",
			Timestamp:  ts,
			Status:     model.NewsStatusSuccess,
		},
	}, nil
}

// sentimentLabel maps the provider's numeric score in [-1, 1] to a label.
func sentimentLabel(v any) string {
	switch s := v.(type) {
	case float64:
		switch {
		case s > 0.2:
			return "positive"
		case s < -0.2:
			return "negative"
		}
	case string:
		switch l := strings.ToLower(s); l {
		case "positive", "negative", "neutral":
			return l
		}
	}
	return "neutral"
}

// ErrorResult is the empty news payload substituted when a search fails outright.
func ErrorResult(q Query, err error) *model.NewsResult {
	return &model.NewsResult{
		Articles:     []model.NewsArticle{},
		TotalResults: 0,
		Query:        q.Text,
		CompanyName:  q.CompanyName,
		SearchMetadata: model.SearchMetadata{
			Status: model.NewsStatusError,
			Error:  fmt.Sprint(err),
		},
	}
}
