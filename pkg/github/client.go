package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repo is the subset of the GitHub repository payload surfaced to clients.
type Repo struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
}

// Client performs best-effort outbound lookups against the GitHub API.
// Responses are cached in Redis when a client is available; cache failures
// never fail the lookup.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cache      *goredis.Client
	cacheTTL   time.Duration
}

func NewClient(baseURL, token string, cache *goredis.Client, cacheTTL time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		token:      token,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// ReposByUsername returns the user's five most recently created public
// repositories. Any upstream non-200 response is reported as ErrNoProfile.
func (c *Client) ReposByUsername(ctx context.Context, username string) ([]Repo, error) {
	cacheKey := "gh:repos:" + username

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var repos []Repo
			if err := json.Unmarshal(cached, &repos); err == nil {
				return repos, nil
			}
		}
	}

	url := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoProfile
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var repos []Repo
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, err
	}

	if c.cache != nil {
		if encoded, err := json.Marshal(repos); err == nil {
			c.cache.Set(ctx, cacheKey, encoded, c.cacheTTL)
		}
	}

	return repos, nil
}
