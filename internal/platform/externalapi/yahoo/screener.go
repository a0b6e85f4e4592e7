package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"briefing_backend/internal/feature/trending/domain/entity"
	"briefing_backend/internal/feature/trending/usecase"
	"briefing_backend/internal/platform/externalapi/yahoo/dto"
)

// YahooScreener はYahoo Financeの定義済みスクリーナーを呼び出すScreenerRepository実装です。
type YahooScreener struct {
	cfg    Config
	client *http.Client
}

// YahooScreenerがScreenerRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ScreenerRepository = (*YahooScreener)(nil)

// NewYahooScreener は指定された設定とHTTPクライアントでYahooScreenerの新しいインスタンスを生成します。
func NewYahooScreener(cfg Config, client *http.Client) *YahooScreener {
	return &YahooScreener{cfg: cfg, client: client}
}

// ListQuotes は定義済みスクリーナーのランク順候補リストを返します。
// scrIdsにはmost_actives・day_gainers・day_losersなどのカテゴリ名をそのまま渡します。
func (y *YahooScreener) ListQuotes(ctx context.Context, category string, count int) ([]entity.ScreenerQuote, error) {
	q := url.Values{}
	q.Set("scrIds", category)
	q.Set("count", strconv.Itoa(count))

	u := fmt.Sprintf("%s/v1/finance/screener/predefined/saved?%s", y.cfg.BaseURL, q.Encode())

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

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo screener http %d", res.StatusCode)
	}

	var body dto.ScreenerResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if apiErr := body.Finance.Error; apiErr != nil {
		return nil, fmt.Errorf("yahoo screener %s: %s", category, apiErr.Description)
	}
	if len(body.Finance.Result) == 0 {
		return []entity.ScreenerQuote{}, nil
	}

	raw := body.Finance.Result[0].Quotes
	quotes := make([]entity.ScreenerQuote, 0, len(raw))
	for _, v := range raw {
		name := v.ShortName
		if name == "" {
			name = v.LongName
		}
		quotes = append(quotes, entity.ScreenerQuote{
			Symbol:    v.Symbol,
			ShortName: name,
		})
	}
	return quotes, nil
}
