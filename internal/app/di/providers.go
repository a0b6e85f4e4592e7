// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	briefingadapters "briefing_backend/internal/feature/briefing/adapters"
	briefingusecase "briefing_backend/internal/feature/briefing/usecase"
	newsusecase "briefing_backend/internal/feature/news/usecase"
	"briefing_backend/internal/platform/cache"
	"briefing_backend/internal/platform/externalapi/exa"
	"briefing_backend/internal/platform/externalapi/yahoo"
	"briefing_backend/internal/platform/gemini"
	infrahttp "briefing_backend/internal/platform/http"
	jwtmw "briefing_backend/internal/platform/jwt"
	"briefing_backend/internal/shared/ratelimiter"
)

// NewMarket creates a fully configured YahooMarket with HTTP client.
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return yahoo.NewYahooMarket(cfg, httpClient)
}

// NewScreener creates a fully configured YahooScreener with HTTP client.
func NewScreener() *yahoo.YahooScreener {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return yahoo.NewYahooScreener(cfg, httpClient)
}

// NewNewsSearch creates the Exa search repository wrapped with Redis caching.
// rdbがnilの場合、デコレーターはキャッシュをバイパスします。
func NewNewsSearch(rdb *redisv9.Client) newsusecase.SearchRepository {
	cfg := exa.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	inner := exa.NewExaSearch(cfg, httpClient)
	return cache.NewCachingSearchRepository(rdb, 10*time.Minute, inner, "news")
}

// NewRateLimiter creates the rate limiter used between briefing generations.
// Yahoo・Exaへの連続リクエストを抑えるため、1分あたりの生成回数を制限します。
func NewRateLimiter() *ratelimiter.RateLimiter {
	return ratelimiter.NewRateLimiter(5, time.Minute)
}

// NewExporter creates the file exporter for daily briefing runs.
// 出力先はOUTPUT_DIRで上書きできます。
func NewExporter() briefingusecase.Exporter {
	baseDir := os.Getenv("OUTPUT_DIR")
	if baseDir == "" {
		baseDir = "output"
	}
	return briefingadapters.NewFileExporter(baseDir)
}

// NewJWTGenerator creates a JWT generator from the JWT_SECRET environment variable.
func NewJWTGenerator() jwtmw.Generator {
	return jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
}

// NewSummarizer creates the optional Gemini news summarizer.
// ENABLE_AI_SUMMARYがtrue以外の場合、または初期化に失敗した場合はnilを返し、
// ブリーフィングは要約なしで生成されます。
func NewSummarizer(ctx context.Context) briefingusecase.NewsSummarizer {
	if os.Getenv("ENABLE_AI_SUMMARY") != "true" {
		return nil
	}
	summarizer, err := gemini.NewGeminiSummarizer(ctx)
	if err != nil {
		slog.Warn("gemini summarizer unavailable, briefings will omit AI summaries", "error", err)
		return nil
	}
	return summarizer
}
