// Package handler はnewsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"briefing_backend/internal/api"
	"briefing_backend/internal/feature/news/domain/entity"
)

// NewsUsecase はニュース検索のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type NewsUsecase interface {
	Search(ctx context.Context, ticker string, limit int) entity.SearchResult
	MarketNews(ctx context.Context, limit int) entity.SearchResult
}

// NewsHandler はニュース検索のHTTPリクエストを処理します。
type NewsHandler struct {
	news NewsUsecase
}

// NewNewsHandler はNewsHandlerの新しいインスタンスを生成します。
func NewNewsHandler(news NewsUsecase) *NewsHandler {
	return &NewsHandler{news: news}
}

// GetMarketNews は市場全体のニュースをJSONで返します。
//
// エンドポイント例:
// GET /api/news?limit=10
func (h *NewsHandler) GetMarketNews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result := h.news.MarketNews(c.Request.Context(), limit)
	c.JSON(statusCode(result), toResponse(result))
}

// GetStockNews は指定銘柄のニュースをJSONで返します。
//
// エンドポイント例:
// GET /api/news/stock-news?ticker=AAPL&limit=5
func (h *NewsHandler) GetStockNews(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:     "ticker query parameter is required",
			ErrorType: entity.ErrorTypeValidation,
		})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	result := h.news.Search(c.Request.Context(), ticker, limit)
	c.JSON(statusCode(result), toResponse(result))
}

// statusCode は検索結果のタグをHTTPステータスコードに対応付けます。
// emptyは「該当ニュースなし」という正常系であり200を返します。
func statusCode(result entity.SearchResult) int {
	if result.Status != entity.StatusError {
		return http.StatusOK
	}
	switch result.ErrorType {
	case entity.ErrorTypeValidation:
		return http.StatusBadRequest
	case entity.ErrorTypeNotInitialized:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func toResponse(result entity.SearchResult) api.SearchNewsResponse {
	return api.SearchNewsResponse{
		Status:    string(result.Status),
		Ticker:    result.Ticker,
		Query:     result.Query,
		ErrorType: result.ErrorType,
		Message:   result.Message,
		News:      api.FromNewsItems(result.News),
	}
}
