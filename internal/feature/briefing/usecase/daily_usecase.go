package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"briefing_backend/internal/feature/briefing/domain/entity"
	trendingentity "briefing_backend/internal/feature/trending/domain/entity"
	"briefing_backend/internal/shared/ratelimiter"
)

// ErrNoBriefingsGenerated は、全カテゴリでブリーフィング生成が失敗した場合に返されます。
var ErrNoBriefingsGenerated = errors.New("no briefings generated")

// TrendingSelector はスクリーナーカテゴリごとの注目銘柄を選定します。
type TrendingSelector interface {
	SelectTop(ctx context.Context, category trendingentity.Category) trendingentity.TrendingSelection
}

// BriefingGenerator は単一銘柄のブリーフィングを生成します。
type BriefingGenerator interface {
	Generate(ctx context.Context, ticker string, category trendingentity.Category) (*entity.BriefingRecord, string, error)
}

// Exporter は生成済みブリーフィング一式をファイルなどへ書き出します。
type Exporter interface {
	Export(briefings []entity.StoredBriefing, generatedAt time.Time) error
}

type dailyUsecase struct {
	trending  TrendingSelector
	briefings BriefingGenerator
	limiter   ratelimiter.RateLimiterInterface
	exporter  Exporter
}

// NewDailyUsecase は日次バッチ用のユースケースを生成します。
// exporter は nil でも動作し、その場合は書き出しをスキップします。
func NewDailyUsecase(trending TrendingSelector, briefings BriefingGenerator, limiter ratelimiter.RateLimiterInterface, exporter Exporter) *dailyUsecase {
	return &dailyUsecase{
		trending:  trending,
		briefings: briefings,
		limiter:   limiter,
		exporter:  exporter,
	}
}

// RunDaily は全スクリーナーカテゴリを巡回してブリーフィングを生成します。
// カテゴリ単位の失敗はログに記録して続行し、1件も生成できなかった場合のみ
// ErrNoBriefingsGenerated を返します。
func (du *dailyUsecase) RunDaily(ctx context.Context) ([]entity.StoredBriefing, error) {
	generatedAt := time.Now()
	results := make([]entity.StoredBriefing, 0, len(trendingentity.AllCategories))

	for _, category := range trendingentity.AllCategories {
		if du.limiter != nil {
			du.limiter.WaitIfNeeded()
		}

		selection := du.trending.SelectTop(ctx, category)
		if selection.Status != trendingentity.StatusSuccess || selection.TopStock == nil {
			slog.Warn("skipping category without selectable stock",
				"category", category,
				"status", selection.Status,
				"message", selection.Message,
			)
			continue
		}

		rec, content, err := du.briefings.Generate(ctx, selection.TopStock.Ticker, category)
		if err != nil {
			slog.Error("briefing generation failed",
				"category", category,
				"ticker", selection.TopStock.Ticker,
				"error", err,
			)
			continue
		}

		results = append(results, toStored(rec, content))
		slog.Info("briefing generated",
			"category", category,
			"ticker", rec.Ticker,
			"news_count", len(rec.News),
		)
	}

	if len(results) == 0 {
		return nil, ErrNoBriefingsGenerated
	}

	if du.exporter != nil {
		if err := du.exporter.Export(results, generatedAt); err != nil {
			slog.Error("briefing export failed", "error", err)
		}
	}

	return results, nil
}
