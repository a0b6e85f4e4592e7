// Package usecase はニュース検索・正規化のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"briefing_backend/internal/feature/news/domain/entity"
)

const (
	// SourceLabel は正規化済みニュースに付与される固定のプロバイダーラベルです。
	SourceLabel = "Exa"
	// DefaultLimit は検索結果のデフォルト件数です。
	DefaultLimit = 5
	// SearchWindow は検索対象期間です。呼び出し時点から過去24時間に限定します。
	SearchWindow = 24 * time.Hour
	// querySuffix is appended to the ticker to build the free-text query.
	querySuffix = " stock news"
	// marketQuery is the free-text query for market-wide news.
	marketQuery = "stock market news"
)

// ErrNotConfigured は検索プロバイダーのAPIキーが未設定の場合にリポジトリが返すエラーです。
var ErrNotConfigured = errors.New("search API is not configured")

// SearchRepository はニュース検索プロバイダーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SearchRepository interface {
	// Search は自由文クエリでstartPublished以降に公開された記事を検索します。
	Search(ctx context.Context, query string, limit int, startPublished time.Time) ([]entity.RawArticle, error)
}

// newsUsecase はニュース検索のユースケースを定義します。
type newsUsecase struct {
	search SearchRepository
}

// NewNewsUsecase はnewsUsecaseの新しいインスタンスを生成します。
func NewNewsUsecase(search SearchRepository) *newsUsecase {
	return &newsUsecase{search: search}
}

// Search は銘柄関連ニュースを検索し、タグ付きのリッチな結果を返します。
// APIキー未設定・プロバイダー障害はStatusErrorとして返し、決してpanicや
// エラー伝播を行いません。0件はStatusEmptyであり、エラーと区別されます。
func (nu *newsUsecase) Search(ctx context.Context, ticker string, limit int) entity.SearchResult {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" {
		return entity.SearchResult{
			Status:    entity.StatusError,
			ErrorType: entity.ErrorTypeValidation,
			Message:   "ticker must not be empty",
		}
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	query := t + querySuffix
	result := nu.runSearch(ctx, query, limit, []string{t})
	result.Ticker = t
	if result.Status == entity.StatusEmpty {
		result.Message = fmt.Sprintf("no news found for %s in the last 24 hours", t)
	}
	return result
}

// MarketNews は市場全体のニュースを検索します。
func (nu *newsUsecase) MarketNews(ctx context.Context, limit int) entity.SearchResult {
	if limit < 1 {
		limit = DefaultLimit * 2
	}
	result := nu.runSearch(ctx, marketQuery, limit, nil)
	if result.Status == entity.StatusEmpty {
		result.Message = "no market news found in the last 24 hours"
	}
	return result
}

// FetchNews はベストエフォートの簡易コントラクトです。エラーを返さず、
// 取得できない場合は常に空のスライスを返します。
func (nu *newsUsecase) FetchNews(ctx context.Context, ticker string, limit int) []entity.NewsItem {
	result := nu.Search(ctx, ticker, limit)
	if result.Status != entity.StatusSuccess {
		slog.Debug("news fetch degraded to empty", "ticker", ticker, "status", result.Status, "message", result.Message)
		return []entity.NewsItem{}
	}
	return result.News
}

// runSearch はプロバイダー呼び出しと記事パースの共通処理です。
func (nu *newsUsecase) runSearch(ctx context.Context, query string, limit int, relatedTickers []string) entity.SearchResult {
	start := time.Now().UTC().Add(-SearchWindow)

	slog.Info("searching news", "query", query, "limit", limit, "since", start)

	raw, err := nu.search.Search(ctx, query, limit, start)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			slog.Warn("news search skipped: provider not configured")
			return entity.SearchResult{
				Status:    entity.StatusError,
				ErrorType: entity.ErrorTypeNotInitialized,
				Message:   "search API is not initialized; set EXA_API_KEY",
				Query:     query,
			}
		}
		slog.Error("news search failed", "query", query, "error", err)
		return entity.SearchResult{
			Status:    entity.StatusError,
			ErrorType: entity.ErrorTypeProvider,
			Message:   err.Error(),
			Query:     query,
		}
	}

	// ベストエフォートの一括パース。不正な記事はスキップし、残りを返す。
	fetchedAt := time.Now()
	items := make([]entity.NewsItem, 0, len(raw))
	for _, a := range raw {
		item, ok := parseArticle(a, relatedTickers, fetchedAt)
		if !ok {
			slog.Warn("skipping malformed news article", "query", query)
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return entity.SearchResult{Status: entity.StatusEmpty, Query: query, News: []entity.NewsItem{}}
	}

	slog.Info("news search completed", "query", query, "count", len(items))
	return entity.SearchResult{Status: entity.StatusSuccess, Query: query, News: items}
}

// parseArticle は生記事を正規化します。URLを持たない記事は利用不能としてスキップします。
func parseArticle(a entity.RawArticle, relatedTickers []string, fetchedAt time.Time) (entity.NewsItem, bool) {
	if a.URL == nil || *a.URL == "" {
		return entity.NewsItem{}, false
	}

	item := entity.NewsItem{
		Source:         SourceLabel,
		URL:            *a.URL,
		PublishedAt:    fetchedAt,
		RelatedTickers: relatedTickers,
	}
	if a.Title != nil {
		item.Title = *a.Title
	}
	if a.Text != nil {
		item.Summary = *a.Text
	}
	// タイムスタンプのパース。失敗時は取得時刻で代用する。
	if a.PublishedDate != nil && *a.PublishedDate != "" {
		if ts, err := time.Parse(time.RFC3339, *a.PublishedDate); err == nil {
			item.PublishedAt = ts
		}
	}
	return item, true
}
