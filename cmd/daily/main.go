package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"briefing_backend/internal/app/di"
	briefingadapters "briefing_backend/internal/feature/briefing/adapters"
	briefingusecase "briefing_backend/internal/feature/briefing/usecase"
	newsusecase "briefing_backend/internal/feature/news/usecase"
	quoteusecase "briefing_backend/internal/feature/quote/usecase"
	trendingusecase "briefing_backend/internal/feature/trending/usecase"
	infradb "briefing_backend/internal/platform/db"
	infraredis "briefing_backend/internal/platform/redis"
)

// 日次ブリーフィングのバッチ実行。
// BRIEFING_CRONが設定されていればそのスケジュールで常駐し、未設定なら一度だけ実行して終了します。
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx := context.Background()

	db := infradb.OpenDB()

	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		if rdb != nil {
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	briefingRepo := briefingadapters.NewBriefingGorm(db)

	quoteUC := quoteusecase.NewQuoteUsecase(di.NewMarket())
	trendingUC := trendingusecase.NewTrendingUsecase(di.NewScreener(), quoteUC)
	newsUC := newsusecase.NewNewsUsecase(di.NewNewsSearch(rdb))
	briefingUC := briefingusecase.NewBriefingUsecase(quoteUC, newsUC, di.NewSummarizer(ctx), briefingRepo)
	dailyUC := briefingusecase.NewDailyUsecase(trendingUC, briefingUC, di.NewRateLimiter(), di.NewExporter())

	run := func() error {
		briefings, err := dailyUC.RunDaily(ctx)
		if err != nil {
			slog.Error("daily briefing run failed", "error", err)
			return err
		}
		slog.Info("daily briefing run finished", "count", len(briefings))
		return nil
	}

	schedule := os.Getenv("BRIEFING_CRON")
	if schedule == "" {
		if err := run(); err != nil {
			os.Exit(1)
		}
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { _ = run() }); err != nil {
		log.Fatalf("invalid BRIEFING_CRON %q: %v", schedule, err)
	}
	slog.Info("daily briefing scheduler started", "cron", schedule)
	c.Run()
}
