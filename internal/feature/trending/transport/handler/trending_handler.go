// Package handler はtrendingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"briefing_backend/internal/api"
	newsentity "briefing_backend/internal/feature/news/domain/entity"
	"briefing_backend/internal/feature/trending/domain/entity"
)

// TrendingNewsCount は選定銘柄に添付するニュースの件数です。
const TrendingNewsCount = 5

// TrendingUsecase はスクリーナーによる注目銘柄選定のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type TrendingUsecase interface {
	SelectTop(ctx context.Context, category entity.Category) entity.TrendingSelection
}

// NewsUsecase は関連ニュースのベストエフォート取得を定義します。
type NewsUsecase interface {
	FetchNews(ctx context.Context, ticker string, limit int) []newsentity.NewsItem
}

// TrendingHandler は注目銘柄選定のHTTPリクエストを処理します。
type TrendingHandler struct {
	trending TrendingUsecase
	news     NewsUsecase
}

// NewTrendingHandler はTrendingHandlerの新しいインスタンスを生成します。
func NewTrendingHandler(trending TrendingUsecase, news NewsUsecase) *TrendingHandler {
	return &TrendingHandler{trending: trending, news: news}
}

// GetTrending はカテゴリ内の注目銘柄と関連ニュースをJSONで返します。
// 結果はタグ付きで、selectionのstatusがそのままレスポンスに反映されます。
//
// エンドポイント例:
// GET /api/stocks/trending?screener_type=most_actives
func (h *TrendingHandler) GetTrending(c *gin.Context) {
	// screener_type が正式なパラメータ名。旧クライアント向けに category も受け付ける
	name := c.Query("screener_type")
	if name == "" {
		name = c.DefaultQuery("category", string(entity.CategoryMostActives))
	}
	category := entity.Category(name)

	selection := h.trending.SelectTop(c.Request.Context(), category)

	resp := api.TrendingResponse{
		Category:  string(selection.Category),
		Status:    string(selection.Status),
		ErrorType: selection.ErrorType,
		Message:   selection.Message,
		News:      []api.NewsItemResponse{},
	}

	switch selection.Status {
	case entity.StatusSuccess:
		stock := api.FromSnapshot(*selection.TopStock)
		resp.Stock = &stock
		resp.News = api.FromNewsItems(h.news.FetchNews(c.Request.Context(), selection.TopStock.Ticker, TrendingNewsCount))
		c.JSON(http.StatusOK, resp)
	case entity.StatusEmpty:
		// トレンド銘柄なしは正常な市場状態であり、エラーではない
		c.JSON(http.StatusOK, resp)
	default:
		status := http.StatusBadGateway
		if selection.ErrorType == entity.ErrorTypeValidation {
			status = http.StatusBadRequest
		}
		c.JSON(status, resp)
	}
}
