// Package entity defines the domain models for the briefing feature.
package entity

import (
	"time"

	newsentity "briefing_backend/internal/feature/news/domain/entity"
	quoteentity "briefing_backend/internal/feature/quote/domain/entity"
	trendingentity "briefing_backend/internal/feature/trending/domain/entity"
)

// BriefingRecord は1銘柄・1カテゴリの組み立て済みブリーフィングです。
// Snapshot.StatusがStatusSuccessの場合のみ有効なレコードとして生成されます。
// Newsは空でも正常です（ニュースなしはエラーではない）。
type BriefingRecord struct {
	Ticker      string
	Category    trendingentity.Category
	GeneratedAt time.Time
	Snapshot    quoteentity.StockSnapshot
	News        []newsentity.NewsItem // Ordered, at most MaxNewsItems
	Summary     string                // AI-generated digest of the news, empty when unavailable
}

// StoredBriefing は永続化・一覧表示用のブリーフィングレコードです。
type StoredBriefing struct {
	ID            uint
	Ticker        string
	Category      string
	GeneratedAt   time.Time
	Price         float64
	ChangePercent float64
	Content       string // Rendered markdown
}
