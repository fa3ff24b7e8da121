// Package newsapi implements the article source on top of a
// TheNewsAPI-compatible service.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/newscurator/pkg/domain"
)

// categories never requested from the API, regardless of pool
var excludedCategories = []string{"entertainment", "travel", "politics", "general", "sports"}

// Client talks to the news API over HTTP. All fetch methods share the same
// base parameters (token, language, excluded categories, trusted domains)
// and normalize responses into domain articles.
type Client struct {
	endpoint  string
	apiKey    string
	language  string
	domains   []string
	client    *http.Client
	sanitizer *bluemonday.Policy
}

// Config holds news API client configuration
type Config struct {
	Endpoint    string
	APIKey      string
	Language    string
	Timeout     time.Duration
	SourcesFile string // optional JSON file with trusted source domains
}

// New creates a news API client
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("news api key is required")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://api.thenewsapi.com/v1/news"
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	domains, err := loadTrustedDomains(cfg.SourcesFile)
	if err != nil {
		lgr.Printf("[WARN] can't load trusted domains from %s: %v", cfg.SourcesFile, err)
	}

	return &Client{
		endpoint:  strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:    cfg.APIKey,
		language:  cfg.Language,
		domains:   domains,
		client:    &http.Client{Timeout: cfg.Timeout},
		sanitizer: bluemonday.StrictPolicy(),
	}, nil
}

// SearchByKeywords fetches articles matching any of the keywords (OR search)
func (c *Client) SearchByKeywords(ctx context.Context, keywords []string, limit int) ([]domain.Article, error) {
	params := c.baseParams(limit)
	params.Set("search", strings.Join(keywords, " | "))
	params.Set("search_fields", "keywords,title,description")
	params.Set("sort", "relevance_score")
	return c.fetch(ctx, params)
}

// SearchByCategory fetches articles for a single category
func (c *Client) SearchByCategory(ctx context.Context, category string, limit int) ([]domain.Article, error) {
	params := c.baseParams(limit)
	params.Set("categories", category)
	return c.fetch(ctx, params)
}

// FetchTrending fetches generic trending articles
func (c *Client) FetchTrending(ctx context.Context, limit int) ([]domain.Article, error) {
	return c.fetch(ctx, c.baseParams(limit))
}

func (c *Client) baseParams(limit int) url.Values {
	params := url.Values{}
	params.Set("api_token", c.apiKey)
	params.Set("language", c.language)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("exclude_categories", strings.Join(excludedCategories, ","))
	if len(c.domains) > 0 {
		params.Set("domains", strings.Join(c.domains, ","))
	}
	return params
}

// apiArticle is the wire format of a single article in the API response
type apiArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

func (c *Client) fetch(ctx context.Context, params url.Values) ([]domain.Article, error) {
	reqURL := c.endpoint + "/top?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news api returned status %d", resp.StatusCode)
	}

	var payload struct {
		Data []apiArticle `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode news api response: %w", err)
	}

	articles := make([]domain.Article, 0, len(payload.Data))
	for _, a := range payload.Data {
		articles = append(articles, domain.Article{
			ID:          domain.ArticleID(a.URL),
			Title:       a.Title,
			Content:     c.sanitizer.Sanitize(a.Description),
			URL:         a.URL,
			Source:      a.Source,
			Keywords:    ExtractKeywords(a.Title),
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}

// loadTrustedDomains reads the optional sources file, a JSON document of the
// form {"sources": [{"domain": "example.com"}, ...]}. Missing file is fine,
// the domains filter is simply not applied.
func loadTrustedDomains(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var parsed struct {
		Sources []struct {
			Domain string `json:"domain"`
		} `json:"sources"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}

	seen := make(map[string]struct{})
	var domains []string
	for _, s := range parsed.Sources {
		if s.Domain == "" {
			continue
		}
		if _, ok := seen[s.Domain]; ok {
			continue
		}
		seen[s.Domain] = struct{}{}
		domains = append(domains, s.Domain)
	}
	return domains, nil
}
