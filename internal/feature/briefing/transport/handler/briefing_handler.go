// Package handler はbriefingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"briefing_backend/internal/api"
	"briefing_backend/internal/feature/briefing/domain/entity"
	"briefing_backend/internal/feature/briefing/usecase"
	trendingentity "briefing_backend/internal/feature/trending/domain/entity"
)

// BriefingUsecase はブリーフィング生成・照会のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BriefingUsecase interface {
	Generate(ctx context.Context, ticker string, category trendingentity.Category) (*entity.BriefingRecord, string, error)
	ListRecent(ctx context.Context, limit int) ([]entity.StoredBriefing, error)
	FindByID(ctx context.Context, id uint) (entity.StoredBriefing, error)
}

// DailyUsecase は日次バッチ実行のユースケースを定義します。
type DailyUsecase interface {
	RunDaily(ctx context.Context) ([]entity.StoredBriefing, error)
}

// BriefingHandler はブリーフィング関連のHTTPリクエストを処理します。
type BriefingHandler struct {
	briefings BriefingUsecase
	daily     DailyUsecase
}

// NewBriefingHandler はBriefingHandlerの新しいインスタンスを生成します。
func NewBriefingHandler(briefings BriefingUsecase, daily DailyUsecase) *BriefingHandler {
	return &BriefingHandler{briefings: briefings, daily: daily}
}

// GenerateBriefing は単一銘柄のブリーフィングを生成してJSONで返します。
//
// エンドポイント例:
// POST /api/briefing/generate  {"ticker": "AAPL", "category": "most_actives"}
func (h *BriefingHandler) GenerateBriefing(c *gin.Context) {
	var req api.GenerateBriefingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request", ErrorType: "validation_error"})
		return
	}
	h.generate(c, req.Ticker, req.Category)
}

// GenerateBriefingByQuery はクエリパラメータ版の生成エンドポイントです。
//
// エンドポイント例:
// GET /api/briefing/generate?ticker=AAPL&category=day_gainers
func (h *BriefingHandler) GenerateBriefingByQuery(c *gin.Context) {
	h.generate(c, c.Query("ticker"), c.Query("category"))
}

func (h *BriefingHandler) generate(c *gin.Context, ticker, category string) {
	if category == "" {
		category = string(trendingentity.CategoryMostActives)
	}

	rec, content, err := h.briefings.Generate(c.Request.Context(), ticker, trendingentity.Category(category))
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), ErrorType: "validation_error"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error(), ErrorType: "provider_error"})
		return
	}

	c.JSON(http.StatusOK, api.BriefingResponse{
		Ticker:      rec.Ticker,
		Category:    string(rec.Category),
		GeneratedAt: rec.GeneratedAt.UTC().Format(time.RFC3339),
		Stock:       api.FromSnapshot(rec.Snapshot),
		News:        api.FromNewsItems(rec.News),
		Summary:     rec.Summary,
		Content:     content,
	})
}

// ListBriefings は保存済みブリーフィングを新しい順にJSONで返します。
//
// エンドポイント例:
// GET /api/briefing?limit=20
func (h *BriefingHandler) ListBriefings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	briefings, err := h.briefings.ListRecent(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, usecase.ErrRepositoryNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "briefing storage is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list briefings"})
		return
	}

	out := make([]api.StoredBriefingResponse, 0, len(briefings))
	for _, b := range briefings {
		out = append(out, toStoredResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

// GetBriefing は保存済みブリーフィングをIDでJSONとして返します。
//
// エンドポイント例:
// GET /api/briefing/42
func (h *BriefingHandler) GetBriefing(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "id must be a positive integer", ErrorType: "validation_error"})
		return
	}

	b, err := h.briefings.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBriefingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "briefing not found"})
		case errors.Is(err, usecase.ErrRepositoryNotConfigured):
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "briefing storage is not configured"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load briefing"})
		}
		return
	}

	c.JSON(http.StatusOK, toStoredResponse(b))
}

// RunDaily は全カテゴリの日次ブリーフィング生成を即時実行します。
// 認証必須のルートに配置されることを想定しています。
//
// エンドポイント例:
// POST /api/briefing/run
func (h *BriefingHandler) RunDaily(c *gin.Context) {
	briefings, err := h.daily.RunDaily(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNoBriefingsGenerated) {
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error(), ErrorType: "provider_error"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "daily run failed"})
		return
	}

	out := make([]api.StoredBriefingResponse, 0, len(briefings))
	for _, b := range briefings {
		out = append(out, toStoredResponse(b))
	}
	c.JSON(http.StatusOK, api.DailyRunResponse{Generated: len(out), Briefings: out})
}

func toStoredResponse(b entity.StoredBriefing) api.StoredBriefingResponse {
	return api.StoredBriefingResponse{
		ID:            b.ID,
		Ticker:        b.Ticker,
		Category:      b.Category,
		GeneratedAt:   b.GeneratedAt.UTC().Format(time.RFC3339),
		Price:         b.Price,
		ChangePercent: b.ChangePercent,
		Content:       b.Content,
	}
}
