package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"briefing_backend/internal/feature/briefing/domain/entity"
	trendingentity "briefing_backend/internal/feature/trending/domain/entity"
)

type mockTrendingSelector struct {
	selectFunc func(ctx context.Context, category trendingentity.Category) trendingentity.TrendingSelection
	calls      []trendingentity.Category
}

func (m *mockTrendingSelector) SelectTop(ctx context.Context, category trendingentity.Category) trendingentity.TrendingSelection {
	m.calls = append(m.calls, category)
	return m.selectFunc(ctx, category)
}

type mockBriefingGenerator struct {
	generateFunc func(ctx context.Context, ticker string, category trendingentity.Category) (*entity.BriefingRecord, string, error)
	calls        []string
}

func (m *mockBriefingGenerator) Generate(ctx context.Context, ticker string, category trendingentity.Category) (*entity.BriefingRecord, string, error) {
	m.calls = append(m.calls, ticker)
	return m.generateFunc(ctx, ticker, category)
}

type mockExporter struct {
	exportFunc func(briefings []entity.StoredBriefing, generatedAt time.Time) error
	calls      int
	lastCount  int
}

func (m *mockExporter) Export(briefings []entity.StoredBriefing, generatedAt time.Time) error {
	m.calls++
	m.lastCount = len(briefings)
	return m.exportFunc(briefings, generatedAt)
}

type noopLimiter struct{ calls int }

func (l *noopLimiter) WaitIfNeeded() { l.calls++ }

func successSelection(category trendingentity.Category, ticker string) trendingentity.TrendingSelection {
	snap := successSnapshot(ticker)
	return trendingentity.TrendingSelection{
		Category: category,
		Status:   trendingentity.StatusSuccess,
		TopStock: &snap,
	}
}

func TestRunDaily_AllCategories(t *testing.T) {
	trending := &mockTrendingSelector{selectFunc: func(ctx context.Context, category trendingentity.Category) trendingentity.TrendingSelection {
		return successSelection(category, "AAPL")
	}}
	generator := &mockBriefingGenerator{generateFunc: func(ctx context.Context, ticker string, category trendingentity.Category) (*entity.BriefingRecord, string, error) {
		return &entity.BriefingRecord{
			Ticker:      ticker,
			Category:    category,
			GeneratedAt: time.Now(),
			Snapshot:    successSnapshot(ticker),
		}, "# briefing", nil
	}}
	exporter := &mockExporter{exportFunc: func(briefings []entity.StoredBriefing, generatedAt time.Time) error {
		return nil
	}}
	limiter := &noopLimiter{}

	du := NewDailyUsecase(trending, generator, limiter, exporter)
	results, err := du.RunDaily(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != len(trendingentity.AllCategories) {
		t.Errorf("expected %d briefings, got %d", len(trendingentity.AllCategories), len(results))
	}
	if len(trending.calls) != len(trendingentity.AllCategories) {
		t.Errorf("selector called %d times, want %d", len(trending.calls), len(trendingentity.AllCategories))
	}
	if limiter.calls != len(trendingentity.AllCategories) {
		t.Errorf("rate limiter consulted %d times, want %d", limiter.calls, len(trendingentity.AllCategories))
	}
	if exporter.calls != 1 || exporter.lastCount != len(results) {
		t.Errorf("exporter calls=%d count=%d, want 1 call with %d briefings", exporter.calls, exporter.lastCount, len(results))
	}
}

func TestRunDaily_SkipsFailedCategories(t *testing.T) {
	trending := &mockTrendingSelector{selectFunc: func(ctx context.Context, category trendingentity.Category) trendingentity.TrendingSelection {
		if category == trendingentity.CategoryDayGainers {
			return trendingentity.TrendingSelection{
				Category: trendingentity.CategoryDayGainers,
				Status:   trendingentity.StatusEmpty,
				Message:  "no trending stocks found",
			}
		}
		return successSelection(category, "NVDA")
	}}
	generateCalls := 0
	generator := &mockBriefingGenerator{generateFunc: func(ctx context.Context, ticker string, category trendingentity.Category) (*entity.BriefingRecord, string, error) {
		generateCalls++
		if category == trendingentity.CategoryDayLosers {
			return nil, "", errors.New("provider timeout")
		}
		return &entity.BriefingRecord{
			Ticker:      ticker,
			Category:    category,
			GeneratedAt: time.Now(),
			Snapshot:    successSnapshot(ticker),
		}, "# briefing", nil
	}}

	du := NewDailyUsecase(trending, generator, nil, nil)
	results, err := du.RunDaily(context.Background())
	if err != nil {
		t.Fatalf("partial failure must not fail the run: %v", err)
	}

	// day_gainers は選定なし、day_losers は生成失敗、most_actives のみ成功
	if len(results) != 1 {
		t.Fatalf("expected 1 briefing, got %d", len(results))
	}
	if results[0].Category != string(trendingentity.CategoryMostActives) {
		t.Errorf("surviving briefing category = %q", results[0].Category)
	}
	if generateCalls != 2 {
		t.Errorf("generator called %d times, want 2", generateCalls)
	}
}

func TestRunDaily_AllFailed(t *testing.T) {
	trending := &mockTrendingSelector{selectFunc: func(ctx context.Context, category trendingentity.Category) trendingentity.TrendingSelection {
		return trendingentity.TrendingSelection{
			Category:  category,
			Status:    trendingentity.StatusError,
			ErrorType: trendingentity.ErrorTypeProvider,
			Message:   "screener unavailable",
		}
	}}
	generator := &mockBriefingGenerator{generateFunc: func(ctx context.Context, ticker string, category trendingentity.Category) (*entity.BriefingRecord, string, error) {
		t.Fatal("generator should not be called")
		return nil, "", nil
	}}
	exporter := &mockExporter{exportFunc: func(briefings []entity.StoredBriefing, generatedAt time.Time) error {
		return nil
	}}

	du := NewDailyUsecase(trending, generator, nil, exporter)
	_, err := du.RunDaily(context.Background())
	if !errors.Is(err, ErrNoBriefingsGenerated) {
		t.Fatalf("expected ErrNoBriefingsGenerated, got %v", err)
	}
	if exporter.calls != 0 {
		t.Errorf("exporter should not run with nothing to export")
	}
}

func TestRunDaily_ExportFailureIsNonFatal(t *testing.T) {
	trending := &mockTrendingSelector{selectFunc: func(ctx context.Context, category trendingentity.Category) trendingentity.TrendingSelection {
		return successSelection(category, "MSFT")
	}}
	generator := &mockBriefingGenerator{generateFunc: func(ctx context.Context, ticker string, category trendingentity.Category) (*entity.BriefingRecord, string, error) {
		return &entity.BriefingRecord{
			Ticker:      ticker,
			Category:    category,
			GeneratedAt: time.Now(),
			Snapshot:    successSnapshot(ticker),
		}, "# briefing", nil
	}}
	exporter := &mockExporter{exportFunc: func(briefings []entity.StoredBriefing, generatedAt time.Time) error {
		return errors.New("disk full")
	}}

	du := NewDailyUsecase(trending, generator, nil, exporter)
	results, err := du.RunDaily(context.Background())
	if err != nil {
		t.Fatalf("export failure must not fail the run: %v", err)
	}
	if len(results) != len(trendingentity.AllCategories) {
		t.Errorf("expected %d briefings, got %d", len(trendingentity.AllCategories), len(results))
	}
}
