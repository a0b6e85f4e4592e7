package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	quoteentity "briefing_backend/internal/feature/quote/domain/entity"
	"briefing_backend/internal/feature/trending/domain/entity"
	"briefing_backend/internal/feature/trending/usecase"
)

// ErrProvider はモックと期待値の間で共有されるセンチネルエラーです。
var ErrProvider = errors.New("screener unavailable")

// mockScreenerRepository はScreenerRepositoryインターフェースのモック実装です。
type mockScreenerRepository struct {
	ListQuotesFunc func(ctx context.Context, category string, count int) ([]entity.ScreenerQuote, error)
	ListCalls      int
}

func (m *mockScreenerRepository) ListQuotes(ctx context.Context, category string, count int) ([]entity.ScreenerQuote, error) {
	m.ListCalls++
	if m.ListQuotesFunc != nil {
		return m.ListQuotesFunc(ctx, category, count)
	}
	return nil, errors.New("ListQuotesFunc is not implemented")
}

// mockSnapshotFetcher はSnapshotFetcherインターフェースのモック実装です。
type mockSnapshotFetcher struct {
	FetchSnapshotFunc func(ctx context.Context, ticker string) quoteentity.StockSnapshot
	FetchCalls        int
}

func (m *mockSnapshotFetcher) FetchSnapshot(ctx context.Context, ticker string) quoteentity.StockSnapshot {
	m.FetchCalls++
	if m.FetchSnapshotFunc != nil {
		return m.FetchSnapshotFunc(ctx, ticker)
	}
	return quoteentity.StockSnapshot{Status: quoteentity.StatusError, ErrorMessage: "FetchSnapshotFunc is not implemented"}
}

// TestTrendingUsecase_SelectTop はカテゴリ検証とタグ付き結果の分岐をテストします。
func TestTrendingUsecase_SelectTop(t *testing.T) {
	ctx := context.Background()

	successSnapshot := quoteentity.StockSnapshot{
		Ticker: "TSLA",
		Name:   "Tesla, Inc.",
		Price:  250,
		Status: quoteentity.StatusSuccess,
	}

	testCases := []struct {
		name              string
		category          entity.Category
		mockListQuotes    func(ctx context.Context, category string, count int) ([]entity.ScreenerQuote, error)
		mockFetchSnapshot func(ctx context.Context, ticker string) quoteentity.StockSnapshot
		expectedStatus    entity.Status
		expectedErrorType string
		messageContains   string
		expectScreenCall  bool
		expectFetchCall   bool
	}{
		{
			name:     "success: top candidate resolved",
			category: entity.CategoryMostActives,
			mockListQuotes: func(_ context.Context, category string, count int) ([]entity.ScreenerQuote, error) {
				if category != "most_actives" {
					t.Errorf("ListQuotes called with category %q, want most_actives", category)
				}
				if count != usecase.ScreenerCount {
					t.Errorf("ListQuotes called with count %d, want %d", count, usecase.ScreenerCount)
				}
				return []entity.ScreenerQuote{{Symbol: "TSLA"}, {Symbol: "AAPL"}}, nil
			},
			mockFetchSnapshot: func(_ context.Context, ticker string) quoteentity.StockSnapshot {
				if ticker != "TSLA" {
					t.Errorf("FetchSnapshot called with %q, want TSLA", ticker)
				}
				return successSnapshot
			},
			expectedStatus:   entity.StatusSuccess,
			expectScreenCall: true,
			expectFetchCall:  true,
		},
		{
			name:              "error: invalid category lists allowed values",
			category:          entity.Category("invalid_category"),
			expectedStatus:    entity.StatusError,
			expectedErrorType: entity.ErrorTypeValidation,
			messageContains:   "invalid_category",
		},
		{
			name:     "empty: screener returns no candidates",
			category: entity.CategoryDayGainers,
			mockListQuotes: func(context.Context, string, int) ([]entity.ScreenerQuote, error) {
				return []entity.ScreenerQuote{}, nil
			},
			expectedStatus:   entity.StatusEmpty,
			messageContains:  "day_gainers",
			expectScreenCall: true,
		},
		{
			name:     "error: provider failure is caught",
			category: entity.CategoryDayLosers,
			mockListQuotes: func(context.Context, string, int) ([]entity.ScreenerQuote, error) {
				return nil, ErrProvider
			},
			expectedStatus:    entity.StatusError,
			expectedErrorType: entity.ErrorTypeProvider,
			messageContains:   "screener unavailable",
			expectScreenCall:  true,
		},
		{
			name:     "error: top candidate without symbol",
			category: entity.CategoryMostActives,
			mockListQuotes: func(context.Context, string, int) ([]entity.ScreenerQuote, error) {
				return []entity.ScreenerQuote{{ShortName: "Mystery Corp"}}, nil
			},
			expectedStatus:    entity.StatusError,
			expectedErrorType: entity.ErrorTypeValidation,
			messageContains:   "symbol",
			expectScreenCall:  true,
		},
		{
			name:     "error: snapshot failure propagates as provider error",
			category: entity.CategoryMostActives,
			mockListQuotes: func(context.Context, string, int) ([]entity.ScreenerQuote, error) {
				return []entity.ScreenerQuote{{Symbol: "ZZZZ"}}, nil
			},
			mockFetchSnapshot: func(context.Context, string) quoteentity.StockSnapshot {
				return quoteentity.StockSnapshot{Ticker: "ZZZZ", Status: quoteentity.StatusError, ErrorMessage: "symbol not found: ZZZZ"}
			},
			expectedStatus:    entity.StatusError,
			expectedErrorType: entity.ErrorTypeProvider,
			messageContains:   "ZZZZ",
			expectScreenCall:  true,
			expectFetchCall:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockScreener := &mockScreenerRepository{ListQuotesFunc: tc.mockListQuotes}
			mockQuotes := &mockSnapshotFetcher{FetchSnapshotFunc: tc.mockFetchSnapshot}
			uc := usecase.NewTrendingUsecase(mockScreener, mockQuotes)

			sel := uc.SelectTop(ctx, tc.category)

			if sel.Status != tc.expectedStatus {
				t.Fatalf("status mismatch: got %s, want %s (message: %s)", sel.Status, tc.expectedStatus, sel.Message)
			}
			if sel.Category != tc.category {
				t.Errorf("category mismatch: got %s, want %s", sel.Category, tc.category)
			}
			if sel.ErrorType != tc.expectedErrorType {
				t.Errorf("error type mismatch: got %q, want %q", sel.ErrorType, tc.expectedErrorType)
			}
			if tc.messageContains != "" && !strings.Contains(sel.Message, tc.messageContains) {
				t.Errorf("message %q should contain %q", sel.Message, tc.messageContains)
			}

			// スクリーナー呼び出し有無の検証
			if tc.expectScreenCall && mockScreener.ListCalls != 1 {
				t.Errorf("ListQuotes was called %d times, expected 1", mockScreener.ListCalls)
			}
			if !tc.expectScreenCall && mockScreener.ListCalls != 0 {
				t.Errorf("ListQuotes was called %d times, expected 0", mockScreener.ListCalls)
			}
			if tc.expectFetchCall && mockQuotes.FetchCalls != 1 {
				t.Errorf("FetchSnapshot was called %d times, expected 1", mockQuotes.FetchCalls)
			}

			// 成功時のみTopStockが設定されることを検証
			if tc.expectedStatus == entity.StatusSuccess {
				if sel.TopStock == nil {
					t.Fatal("expected TopStock to be set on success")
				}
				if sel.TopStock.Ticker != "TSLA" {
					t.Errorf("TopStock ticker mismatch: got %q", sel.TopStock.Ticker)
				}
			} else if sel.TopStock != nil {
				t.Error("TopStock must be nil unless status is success")
			}
		})
	}
}
