// Package api はHTTPトランスポート間で共有されるレスポンス型を定義します。
package api

import (
	"time"

	newsentity "briefing_backend/internal/feature/news/domain/entity"
	quoteentity "briefing_backend/internal/feature/quote/domain/entity"
)

// ErrorResponse is the common error payload for all endpoints.
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorType string `json:"error_type,omitempty"`
}

// NewsItemResponse is the JSON representation of a news article.
type NewsItemResponse struct {
	Title          string   `json:"title"`
	Summary        string   `json:"summary"`
	Source         string   `json:"source"`
	URL            string   `json:"url"`
	PublishedAt    string   `json:"published_at"`
	RelatedTickers []string `json:"related_tickers"`
}

// StockSnapshotResponse is the JSON representation of a stock snapshot.
type StockSnapshotResponse struct {
	Ticker           string  `json:"ticker"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	PreviousClose    float64 `json:"previous_close"`
	ChangePercent    float64 `json:"change_percent"`
	DayHigh          float64 `json:"day_high"`
	DayLow           float64 `json:"day_low"`
	FiftyTwoWeekHigh float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64 `json:"fifty_two_week_low"`
	Volume           int64   `json:"volume"`
	AvgVolume        int64   `json:"avg_volume"`
	MarketCap        string  `json:"market_cap"`
	Sector           string  `json:"sector"`
	Industry         string  `json:"industry"`
	PERatio          string  `json:"pe_ratio"`
}

// FromNewsItem converts a domain news item to its response form.
func FromNewsItem(n newsentity.NewsItem) NewsItemResponse {
	tickers := n.RelatedTickers
	if tickers == nil {
		tickers = []string{}
	}
	return NewsItemResponse{
		Title:          n.Title,
		Summary:        n.Summary,
		Source:         n.Source,
		URL:            n.URL,
		PublishedAt:    n.PublishedAt.UTC().Format(time.RFC3339),
		RelatedTickers: tickers,
	}
}

// FromNewsItems converts a slice of domain news items. Never returns nil.
func FromNewsItems(items []newsentity.NewsItem) []NewsItemResponse {
	out := make([]NewsItemResponse, 0, len(items))
	for _, n := range items {
		out = append(out, FromNewsItem(n))
	}
	return out
}

// FromSnapshot converts a domain snapshot to its response form.
func FromSnapshot(s quoteentity.StockSnapshot) StockSnapshotResponse {
	return StockSnapshotResponse{
		Ticker:           s.Ticker,
		Name:             s.Name,
		Price:            s.Price,
		PreviousClose:    s.PreviousClose,
		ChangePercent:    s.ChangePercent,
		DayHigh:          s.DayHigh,
		DayLow:           s.DayLow,
		FiftyTwoWeekHigh: s.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  s.FiftyTwoWeekLow,
		Volume:           s.Volume,
		AvgVolume:        s.AvgVolume,
		MarketCap:        s.MarketCapDisplay,
		Sector:           s.Sector,
		Industry:         s.Industry,
		PERatio:          s.PERatioDisplay,
	}
}
