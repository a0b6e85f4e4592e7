package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"briefing_backend/internal/app/di"
	"briefing_backend/internal/app/router"
	authhandler "briefing_backend/internal/feature/auth/transport/handler"
	authusecase "briefing_backend/internal/feature/auth/usecase"
	briefingadapters "briefing_backend/internal/feature/briefing/adapters"
	briefinghandler "briefing_backend/internal/feature/briefing/transport/handler"
	briefingusecase "briefing_backend/internal/feature/briefing/usecase"
	newshandler "briefing_backend/internal/feature/news/transport/handler"
	newsusecase "briefing_backend/internal/feature/news/usecase"
	quotehandler "briefing_backend/internal/feature/quote/transport/handler"
	quoteusecase "briefing_backend/internal/feature/quote/usecase"
	trendinghandler "briefing_backend/internal/feature/trending/transport/handler"
	trendingusecase "briefing_backend/internal/feature/trending/usecase"
	infradb "briefing_backend/internal/platform/db"
	infraredis "briefing_backend/internal/platform/redis"
)

func main() {
	// .env はローカル開発用。無ければ環境変数のみで動く
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis
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

	// Repository
	briefingRepo := briefingadapters.NewBriefingGorm(db)

	// Usecase
	quoteUC := quoteusecase.NewQuoteUsecase(di.NewMarket())
	trendingUC := trendingusecase.NewTrendingUsecase(di.NewScreener(), quoteUC)
	newsUC := newsusecase.NewNewsUsecase(di.NewNewsSearch(rdb))
	briefingUC := briefingusecase.NewBriefingUsecase(quoteUC, newsUC, di.NewSummarizer(ctx), briefingRepo)
	dailyUC := briefingusecase.NewDailyUsecase(trendingUC, briefingUC, di.NewRateLimiter(), di.NewExporter())
	authUC := authusecase.NewAuthUsecase(os.Getenv("ADMIN_PASSWORD_HASH"), di.NewJWTGenerator())

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	stockH := quotehandler.NewStockHandler(quoteUC, newsUC)
	trendingH := trendinghandler.NewTrendingHandler(trendingUC, newsUC)
	newsH := newshandler.NewNewsHandler(newsUC)
	briefingH := briefinghandler.NewBriefingHandler(briefingUC, dailyUC)

	// ルータ生成
	router := router.NewRouter(authH, stockH, trendingH, newsH, briefingH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
