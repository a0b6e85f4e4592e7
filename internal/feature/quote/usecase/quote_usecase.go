package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"briefing_backend/internal/feature/quote/domain/entity"
)

const (
	// UnknownValue は表示用フィールドが解決できない場合のセンチネルです。
	UnknownValue = "N/A"
)

// MarketRepository は銘柄データの取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetProfile は企業プロフィール（社名・セクター・産業）を取得します。
	GetProfile(ctx context.Context, ticker string) (entity.CompanyProfile, error)
	// GetSummary はサマリークォート（価格・出来高・時価総額など）を取得します。
	GetSummary(ctx context.Context, ticker string) (entity.SummaryQuote, error)
}

// quoteUsecase は銘柄スナップショット正規化のユースケースを定義します。
type quoteUsecase struct {
	market MarketRepository
}

// NewQuoteUsecase はquoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(market MarketRepository) *quoteUsecase {
	return &quoteUsecase{market: market}
}

// FetchSnapshot は指定された銘柄の正規化済みスナップショットを取得します。
//
// この関数はGoのエラーを返しません。入力不正やプロバイダー障害は
// Status=StatusErrorのスナップショットとして返し、呼び出し側が
// エラー状態をそのまま表示できるようにします。
// プロフィール取得とサマリー取得はそれぞれ独立して失敗を許容し、
// 部分的なデータでもスナップショットを成立させます。
func (qu *quoteUsecase) FetchSnapshot(ctx context.Context, ticker string) entity.StockSnapshot {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" {
		return entity.StockSnapshot{
			Ticker:       t,
			Status:       entity.StatusError,
			ErrorMessage: "ticker must not be empty",
		}
	}

	snap := entity.StockSnapshot{
		Ticker:           t,
		Name:             UnknownValue,
		Sector:           UnknownValue,
		Industry:         UnknownValue,
		MarketCapDisplay: UnknownValue,
		PERatioDisplay:   UnknownValue,
		Status:           entity.StatusSuccess,
	}

	// 企業プロフィール取得。失敗してもスナップショット全体は失敗させない。
	if profile, err := qu.market.GetProfile(ctx, t); err != nil {
		slog.Warn("profile fetch failed", "ticker", t, "error", err)
	} else {
		if profile.Name != "" {
			snap.Name = profile.Name
		}
		if profile.Sector != "" {
			snap.Sector = profile.Sector
		}
		if profile.Industry != "" {
			snap.Industry = profile.Industry
		}
	}

	// サマリークォート取得。プロバイダーが銘柄自体を認識しない場合のみ
	// スナップショット全体をエラーにする（途中まで解決した値は破棄）。
	summary, err := qu.market.GetSummary(ctx, t)
	if err != nil {
		if isNotFound(err) {
			return entity.StockSnapshot{
				Ticker:       t,
				Status:       entity.StatusError,
				ErrorMessage: err.Error(),
			}
		}
		slog.Warn("summary fetch failed", "ticker", t, "error", err)
		return snap
	}

	snap.Price = resolvePrice(summary, t)
	snap.PreviousClose = f64OrZero(summary.PreviousClose)
	snap.DayHigh = f64OrZero(summary.DayHigh)
	snap.DayLow = f64OrZero(summary.DayLow)
	snap.FiftyTwoWeekHigh = f64OrZero(summary.FiftyTwoWeekHigh)
	snap.FiftyTwoWeekLow = f64OrZero(summary.FiftyTwoWeekLow)
	snap.Volume = i64OrZero(summary.Volume)
	snap.AvgVolume = i64OrZero(summary.AvgVolume)
	snap.MarketCapDisplay = FormatMarketCap(summary.MarketCap)
	snap.PERatioDisplay = FormatPERatio(summary.TrailingPE)

	// 変動率の計算。前日終値が0以下の場合はゼロ除算を避けて0のままにする。
	if snap.PreviousClose > 0 && snap.Price > 0 {
		snap.ChangePercent = (snap.Price - snap.PreviousClose) / snap.PreviousClose * 100
	} else if snap.PreviousClose <= 0 && snap.Price > 0 {
		slog.Warn("previous close unavailable, change percent left at 0", "ticker", t)
	}

	return snap
}

// resolvePrice は現在価格を次の優先順で解決します:
// 直近約定価格 → bid/askの算術平均 → 始値 → 0。
// 最初に見つかった正の値が採用されます。
func resolvePrice(s entity.SummaryQuote, ticker string) float64 {
	if s.LastPrice != nil && *s.LastPrice > 0 {
		return *s.LastPrice
	}
	if s.Bid != nil && s.Ask != nil && *s.Bid > 0 && *s.Ask > 0 {
		return (*s.Bid + *s.Ask) / 2
	}
	if s.Open != nil && *s.Open > 0 {
		return *s.Open
	}
	slog.Warn("no usable price found", "ticker", ticker)
	return 0
}

// FormatMarketCap はドル建て時価総額をT/B/Mの単位付き表示文字列に変換します。
// 値がない、または正でない場合はUnknownValueを返します。
func FormatMarketCap(marketCap *float64) string {
	if marketCap == nil || *marketCap <= 0 {
		return UnknownValue
	}
	mc := *marketCap
	switch {
	case mc >= 1e12:
		return fmt.Sprintf("$%.1fT", mc/1e12)
	case mc >= 1e9:
		return fmt.Sprintf("$%.1fB", mc/1e9)
	default:
		return fmt.Sprintf("$%.1fM", mc/1e6)
	}
}

// FormatPERatio はPERを小数点2桁の表示文字列に変換します。
// 値がない、0、または有限でない場合はUnknownValueを返します。
func FormatPERatio(pe *float64) string {
	if pe == nil || *pe == 0 || math.IsNaN(*pe) || math.IsInf(*pe, 0) {
		return UnknownValue
	}
	return fmt.Sprintf("%.2f", *pe)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrSymbolNotFound)
}

func f64OrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func i64OrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
