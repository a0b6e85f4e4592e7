package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"briefing_backend/internal/feature/quote/domain/entity"
	"briefing_backend/internal/feature/quote/usecase"
	"briefing_backend/internal/platform/externalapi/yahoo/dto"
)

// Yahooは未知のUser-Agentを弾くため、ブラウザ相当の値を送ります。
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// YahooMarket はYahoo Finance外部APIから銘柄データを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetProfile はassetProfileとpriceモジュールから企業プロフィールを取得します。
// 社名はlongName、なければshortNameにフォールバックします。
func (y *YahooMarket) GetProfile(ctx context.Context, ticker string) (entity.CompanyProfile, error) {
	result, err := y.fetchQuoteSummary(ctx, ticker, "assetProfile,price")
	if err != nil {
		return entity.CompanyProfile{}, err
	}

	var profile entity.CompanyProfile
	if result.Price != nil {
		profile.Name = result.Price.LongName
		if profile.Name == "" {
			profile.Name = result.Price.ShortName
		}
	}
	if result.AssetProfile != nil {
		profile.Sector = result.AssetProfile.Sector
		profile.Industry = result.AssetProfile.Industry
	}
	return profile, nil
}

// GetSummary はpriceとsummaryDetailモジュールからサマリークォートを取得します。
// Yahooが省略したフィールドはnilのまま返し、解釈はusecase側に委ねます。
func (y *YahooMarket) GetSummary(ctx context.Context, ticker string) (entity.SummaryQuote, error) {
	result, err := y.fetchQuoteSummary(ctx, ticker, "price,summaryDetail")
	if err != nil {
		return entity.SummaryQuote{}, err
	}

	var summary entity.SummaryQuote
	if result.Price != nil {
		summary.LastPrice = result.Price.RegularMarketPrice.Float()
	}
	if d := result.SummaryDetail; d != nil {
		summary.Bid = d.Bid.Float()
		summary.Ask = d.Ask.Float()
		summary.Open = d.Open.Float()
		summary.PreviousClose = d.PreviousClose.Float()
		summary.DayHigh = d.DayHigh.Float()
		summary.DayLow = d.DayLow.Float()
		summary.FiftyTwoWeekHigh = d.FiftyTwoWeekHigh.Float()
		summary.FiftyTwoWeekLow = d.FiftyTwoWeekLow.Float()
		summary.Volume = d.Volume.Int()
		summary.AvgVolume = d.AverageVolume.Int()
		summary.MarketCap = d.MarketCap.Float()
		summary.TrailingPE = d.TrailingPE.Float()
	}
	return summary, nil
}

// fetchQuoteSummary はquoteSummaryエンドポイントを呼び出し、先頭のresultを返します。
// Yahooがエラーを返した場合や結果が空の場合はusecase.ErrSymbolNotFoundをラップします。
func (y *YahooMarket) fetchQuoteSummary(ctx context.Context, ticker, modules string) (*dto.QuoteSummaryResult, error) {
	q := url.Values{}
	q.Set("modules", modules)

	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", y.cfg.BaseURL, url.PathEscape(ticker), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w", ticker, usecase.ErrSymbolNotFound)
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.QuoteSummaryResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if apiErr := body.QuoteSummary.Error; apiErr != nil {
		return nil, fmt.Errorf("yahoo quoteSummary %s (%s): %w", ticker, apiErr.Description, usecase.ErrSymbolNotFound)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo quoteSummary %s: empty result: %w", ticker, usecase.ErrSymbolNotFound)
	}
	return &body.QuoteSummary.Result[0], nil
}
