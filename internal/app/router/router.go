package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "briefing_backend/internal/feature/auth/transport/handler"
	briefinghandler "briefing_backend/internal/feature/briefing/transport/handler"
	newshandler "briefing_backend/internal/feature/news/transport/handler"
	quotehandler "briefing_backend/internal/feature/quote/transport/handler"
	trendinghandler "briefing_backend/internal/feature/trending/transport/handler"
	"briefing_backend/internal/platform/http/handler"
	jwtmw "briefing_backend/internal/platform/jwt"
)

func NewRouter(authH *authhandler.AuthHandler, stocks *quotehandler.StockHandler,
	trending *trendinghandler.TrendingHandler, news *newshandler.NewsHandler,
	briefings *briefinghandler.BriefingHandler) *gin.Engine {
	r := gin.Default()

	// ローカルのフロントエンド開発サーバーからのアクセスを許可
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// ログイン（JWT 発行）
	r.POST("/login", authH.Login)

	api := r.Group("/api")
	{
		// 銘柄
		api.GET("/stocks/trending", trending.GetTrending)
		api.GET("/stocks/:ticker", stocks.GetStockDetail)

		// ニュース
		api.GET("/news", news.GetMarketNews)
		api.GET("/news/stock-news", news.GetStockNews)

		// ブリーフィング
		api.POST("/briefing/generate", briefings.GenerateBriefing)
		api.GET("/briefing/generate", briefings.GenerateBriefingByQuery)
		api.GET("/briefing", briefings.ListBriefings)
		api.GET("/briefing/:id", briefings.GetBriefing)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	protected := api.Group("")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.POST("/briefing/run", briefings.RunDaily)
	}

	return r
}
