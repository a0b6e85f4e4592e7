// Package entity defines the domain models for the quote feature.
package entity

// Status は取得結果の状態を表します。
type Status string

const (
	// StatusSuccess indicates the lookup completed and the data is usable.
	StatusSuccess Status = "success"
	// StatusError indicates the lookup failed; numeric fields are meaningless.
	StatusError Status = "error"
)

// StockSnapshot は1銘柄の取得時点の正規化済み市場データです。
// 生成後は変更されません。StatusがStatusErrorの場合、数値フィールドは使用しないこと。
type StockSnapshot struct {
	Ticker           string  // Uppercase symbol (e.g., "AAPL")
	Name             string  // Display name, "N/A" when unknown
	Price            float64 // Resolved current price, 0 when unresolvable
	PreviousClose    float64
	ChangePercent    float64 // Derived; 0 when previous close is unknown
	DayHigh          float64
	DayLow           float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
	Volume           int64
	AvgVolume        int64
	MarketCapDisplay string // Bucketed display string ("$1.2T"), "N/A" when unknown
	Sector           string
	Industry         string
	PERatioDisplay   string // "45.23" style, "N/A" when unknown
	Status           Status
	ErrorMessage     string // Set iff Status is StatusError
}
