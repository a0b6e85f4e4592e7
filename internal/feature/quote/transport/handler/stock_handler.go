// Package handler はquoteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"briefing_backend/internal/api"
	newsentity "briefing_backend/internal/feature/news/domain/entity"
	"briefing_backend/internal/feature/quote/domain/entity"
)

// StockDetailNewsCount はスナップショットに添付するニュースの件数です。
const StockDetailNewsCount = 5

// QuoteUsecase は銘柄スナップショット取得のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	FetchSnapshot(ctx context.Context, ticker string) entity.StockSnapshot
}

// NewsUsecase は関連ニュースのベストエフォート取得を定義します。
type NewsUsecase interface {
	FetchNews(ctx context.Context, ticker string, limit int) []newsentity.NewsItem
}

// StockHandler は銘柄詳細のHTTPリクエストを処理します。
type StockHandler struct {
	quotes QuoteUsecase
	news   NewsUsecase
}

// NewStockHandler はStockHandlerの新しいインスタンスを生成します。
func NewStockHandler(quotes QuoteUsecase, news NewsUsecase) *StockHandler {
	return &StockHandler{quotes: quotes, news: news}
}

// GetStockDetail は銘柄スナップショットと関連ニュースをJSONで返します。
//
// エンドポイント例:
// GET /api/stocks/AAPL
func (h *StockHandler) GetStockDetail(c *gin.Context) {
	ticker := c.Param("ticker")

	snap := h.quotes.FetchSnapshot(c.Request.Context(), ticker)
	if snap.Status == entity.StatusError {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:     snap.ErrorMessage,
			ErrorType: "validation_error",
		})
		return
	}

	news := h.news.FetchNews(c.Request.Context(), snap.Ticker, StockDetailNewsCount)

	c.JSON(http.StatusOK, api.StockDetailResponse{
		StockSnapshotResponse: api.FromSnapshot(snap),
		News:                  api.FromNewsItems(news),
	})
}
