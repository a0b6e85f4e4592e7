package usecase

import (
	"strings"
	"testing"
	"time"

	"briefing_backend/internal/feature/briefing/domain/entity"
	newsentity "briefing_backend/internal/feature/news/domain/entity"
	trendingentity "briefing_backend/internal/feature/trending/domain/entity"
)

func TestRenderMarkdown(t *testing.T) {
	generatedAt := time.Date(2025, 6, 15, 7, 0, 0, 0, time.UTC)
	rec := &entity.BriefingRecord{
		Ticker:      "AAPL",
		Category:    trendingentity.CategoryMostActives,
		GeneratedAt: generatedAt,
		Snapshot:    successSnapshot("AAPL"),
		News: []newsentity.NewsItem{
			{
				Title:       "Apple unveils new chip",
				Summary:     "Faster and cooler.",
				Source:      "Exa",
				URL:         "https://example.com/chip",
				PublishedAt: generatedAt.Add(-2 * time.Hour),
			},
		},
	}

	md := RenderMarkdown(rec)

	for _, want := range []string{
		"# AAPL - Apple Inc. Briefing",
		"**Generated**: 2025-06-15 07:00:00",
		"**Category**: most_actives",
		"| Price | $150.25 |",
		"| Change | +2.50% (up) |",
		"| Volume | 1.5M |",
		"| Market Cap | $3.2T |",
		"| P/E | 28.50 |",
		"### 1. Apple unveils new chip",
		"[Read more](https://example.com/chip)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("rendered markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderMarkdown_NegativeChangeAndNoNews(t *testing.T) {
	snap := successSnapshot("TSLA")
	snap.Name = "Tesla, Inc."
	snap.ChangePercent = -3.75
	rec := &entity.BriefingRecord{
		Ticker:      "TSLA",
		Category:    trendingentity.CategoryDayLosers,
		GeneratedAt: time.Now(),
		Snapshot:    snap,
	}

	md := RenderMarkdown(rec)

	if !strings.Contains(md, "| Change | -3.75% (down) |") {
		t.Errorf("negative change not rendered as down:\n%s", md)
	}
	if !strings.Contains(md, "No related news at the moment.") {
		t.Errorf("empty news section not rendered:\n%s", md)
	}
}

func TestRenderMarkdown_IncludesSummary(t *testing.T) {
	rec := &entity.BriefingRecord{
		Ticker:      "AAPL",
		Category:    trendingentity.CategoryMostActives,
		GeneratedAt: time.Now(),
		Snapshot:    successSnapshot("AAPL"),
		Summary:     "Momentum driven by earnings beat.",
	}

	md := RenderMarkdown(rec)
	if !strings.Contains(md, "Momentum driven by earnings beat.") {
		t.Errorf("AI summary missing from analysis section:\n%s", md)
	}
}

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		volume int64
		want   string
	}{
		{volume: 45_230_000, want: "45.2M"},
		{volume: 1_000_000, want: "1.0M"},
		{volume: 12_500, want: "12.5K"},
		{volume: 999, want: "999"},
		{volume: 0, want: "0"},
	}

	for _, tt := range tests {
		if got := FormatVolume(tt.volume); got != tt.want {
			t.Errorf("FormatVolume(%d) = %q, want %q", tt.volume, got, tt.want)
		}
	}
}
