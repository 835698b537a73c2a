package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL = "https://newsapi.org/v2"
	fromLayout     = "2006-01-02"
)

type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey, baseURL string) *NewsAPIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Fetch(ctx context.Context, keyword string, from time.Time) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(keyword, from), nil)
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("newsapi request: %s", c.redact(err))}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("newsapi fetch: %s", c.redact(err))}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("newsapi decode: %s", err)}
	}

	if raw.Articles == nil {
		return nil, ErrMalformedResponse
	}

	articles := make([]Article, 0, len(*raw.Articles))
	for _, item := range *raw.Articles {
		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			Author:      item.Author,
			URL:         item.URL,
			URLToImage:  item.URLToImage,
			PublishedAt: parsePublishedAt(item.PublishedAt),
		})
	}

	return articles, nil
}

func (c *NewsAPIClient) searchURL(keyword string, from time.Time) string {
	q := url.Values{}
	q.Set("q", keyword)
	q.Set("from", from.Format(fromLayout))
	q.Set("sortBy", "publishedAt")
	q.Set("apiKey", c.apiKey)

	return c.baseURL + "/everything?" + q.Encode()
}

// redact strips the request URL, which carries the API key, from client errors.
func (c *NewsAPIClient) redact(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}

func parsePublishedAt(s *string) *time.Time {
	if s == nil {
		return nil
	}

	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}

	return &t
}

type newsAPIResponse struct {
	Status   string            `json:"status"`
	Articles *[]newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Author      *string `json:"author"`
	URL         *string `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt *string `json:"publishedAt"`
}
