package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"briefing_backend/internal/feature/news/domain/entity"
	"briefing_backend/internal/feature/news/usecase"
)

// searchRequest is the JSON body for the Exa /search endpoint.
type searchRequest struct {
	Query              string `json:"query"`
	NumResults         int    `json:"numResults"`
	StartPublishedDate string `json:"startPublishedDate,omitempty"`
	Type               string `json:"type"`
	Contents           struct {
		Text bool `json:"text"`
	} `json:"contents"`
}

// searchResponse is the JSON response from the Exa /search endpoint.
type searchResponse struct {
	Results []struct {
		Title         *string `json:"title"`
		URL           *string `json:"url"`
		PublishedDate *string `json:"publishedDate"`
		Text          *string `json:"text"`
	} `json:"results"`
}

// ExaSearch はExa検索APIを呼び出すSearchRepository実装です。
type ExaSearch struct {
	cfg    Config
	client *http.Client
}

// ExaSearchがSearchRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SearchRepository = (*ExaSearch)(nil)

// NewExaSearch は指定された設定とHTTPクライアントでExaSearchの新しいインスタンスを生成します。
func NewExaSearch(cfg Config, client *http.Client) *ExaSearch {
	return &ExaSearch{cfg: cfg, client: client}
}

// Search は自由文クエリでstartPublished以降に公開された記事を検索します。
// APIキーが未設定の場合はusecase.ErrNotConfiguredを返します。
func (e *ExaSearch) Search(ctx context.Context, query string, limit int, startPublished time.Time) ([]entity.RawArticle, error) {
	if e.cfg.APIKey == "" {
		return nil, usecase.ErrNotConfigured
	}

	reqBody := searchRequest{
		Query:      query,
		NumResults: limit,
		Type:       "auto",
	}
	reqBody.Contents.Text = true
	if !startPublished.IsZero() {
		reqBody.StartPublishedDate = startPublished.UTC().Format(time.RFC3339)
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.BaseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", e.cfg.APIKey)

	res, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("exa http %d", res.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	articles := make([]entity.RawArticle, 0, len(body.Results))
	for _, r := range body.Results {
		articles = append(articles, entity.RawArticle{
			Title:         r.Title,
			URL:           r.URL,
			PublishedDate: r.PublishedDate,
			Text:          r.Text,
		})
	}
	return articles, nil
}
