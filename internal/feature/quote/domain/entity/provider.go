package entity

// CompanyProfile はプロバイダーから取得した企業プロフィールの中間レコードです。
// 未取得のフィールドは空文字列のまま返され、フォールバック処理はusecase側で行います。
type CompanyProfile struct {
	Name     string
	Sector   string
	Industry string
}

// SummaryQuote はプロバイダーのサマリークォートの中間レコードです。
// プロバイダーが省略しうるフィールドはポインタで表現し、nilは「値なし」を意味します。
type SummaryQuote struct {
	LastPrice        *float64 // Last traded price
	Bid              *float64
	Ask              *float64
	Open             *float64 // Session-open price
	PreviousClose    *float64
	DayHigh          *float64
	DayLow           *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
	Volume           *int64
	AvgVolume        *int64
	MarketCap        *float64 // Raw market cap in dollars
	TrailingPE       *float64
}
