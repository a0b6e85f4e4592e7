// Package usecase はトレンド銘柄選定のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	quoteentity "briefing_backend/internal/feature/quote/domain/entity"
	"briefing_backend/internal/feature/trending/domain/entity"
)

const (
	// ScreenerCount はスクリーナーに要求する候補数です。選定に使うのは先頭の1件のみです。
	ScreenerCount = 25
)

// ScreenerRepository はスクリーナープロバイダーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ScreenerRepository interface {
	// ListQuotes は指定カテゴリのランク順候補リストを返します。
	ListQuotes(ctx context.Context, category string, count int) ([]entity.ScreenerQuote, error)
}

// SnapshotFetcher は選定された銘柄の詳細取得を抽象化します。
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context, ticker string) quoteentity.StockSnapshot
}

// trendingUsecase はトレンド銘柄選定のユースケースを定義します。
type trendingUsecase struct {
	screener ScreenerRepository
	quotes   SnapshotFetcher
}

// NewTrendingUsecase はtrendingUsecaseの新しいインスタンスを生成します。
func NewTrendingUsecase(screener ScreenerRepository, quotes SnapshotFetcher) *trendingUsecase {
	return &trendingUsecase{screener: screener, quotes: quotes}
}

// SelectTop は指定カテゴリのTOP1銘柄を選定し、詳細スナップショット付きで返します。
//
// プロバイダーのランク順が正であり、このレイヤーでは並べ替えを行いません。
// 候補が存在しない場合はStatusEmptyを返します。これは正常な市場状態であり、
// エラーとは区別されます。プロバイダー障害はGoのエラーとして伝播せず、
// StatusErrorのタグ付き結果として返します。
func (tu *trendingUsecase) SelectTop(ctx context.Context, category entity.Category) entity.TrendingSelection {
	if !category.Valid() {
		return entity.TrendingSelection{
			Category:  category,
			Status:    entity.StatusError,
			ErrorType: entity.ErrorTypeValidation,
			Message:   fmt.Sprintf("invalid screener category %q: allowed values are %s", category, entity.AllowedCategoryNames()),
		}
	}

	slog.Info("selecting top trending stock", "category", category)

	quotes, err := tu.screener.ListQuotes(ctx, string(category), ScreenerCount)
	if err != nil {
		slog.Error("screener query failed", "category", category, "error", err)
		return entity.TrendingSelection{
			Category:  category,
			Status:    entity.StatusError,
			ErrorType: entity.ErrorTypeProvider,
			Message:   err.Error(),
		}
	}

	if len(quotes) == 0 {
		slog.Warn("screener returned no candidates", "category", category)
		return entity.TrendingSelection{
			Category: category,
			Status:   entity.StatusEmpty,
			Message:  fmt.Sprintf("no screener results for %s", category),
		}
	}

	top := quotes[0]
	if top.Symbol == "" {
		return entity.TrendingSelection{
			Category:  category,
			Status:    entity.StatusError,
			ErrorType: entity.ErrorTypeValidation,
			Message:   "top screener candidate has no resolvable symbol",
		}
	}

	slog.Info("top stock selected", "category", category, "symbol", top.Symbol)

	snap := tu.quotes.FetchSnapshot(ctx, top.Symbol)
	if snap.Status == quoteentity.StatusError {
		return entity.TrendingSelection{
			Category:  category,
			Status:    entity.StatusError,
			ErrorType: entity.ErrorTypeProvider,
			Message:   snap.ErrorMessage,
		}
	}

	return entity.TrendingSelection{
		Category: category,
		Status:   entity.StatusSuccess,
		TopStock: &snap,
	}
}
