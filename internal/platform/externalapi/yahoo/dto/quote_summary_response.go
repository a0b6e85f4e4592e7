// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// RawValue is Yahoo's wrapper around a numeric field. The raw value is
// omitted entirely when Yahoo has no data for the field.
type RawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt,omitempty"`
}

// RawIntValue is the integral counterpart of RawValue.
type RawIntValue struct {
	Raw *int64 `json:"raw"`
	Fmt string `json:"fmt,omitempty"`
}

// QuoteSummaryResponse represents the JSON response from the quoteSummary endpoint.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *APIError            `json:"error"`
	} `json:"quoteSummary"`
}

// APIError is the error object Yahoo embeds in failed responses.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// QuoteSummaryResult holds the modules requested from quoteSummary.
type QuoteSummaryResult struct {
	AssetProfile  *AssetProfile  `json:"assetProfile"`
	Price         *PriceModule   `json:"price"`
	SummaryDetail *SummaryDetail `json:"summaryDetail"`
}

// AssetProfile carries the company profile module.
type AssetProfile struct {
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
}

// PriceModule carries the price module.
type PriceModule struct {
	LongName           string    `json:"longName"`
	ShortName          string    `json:"shortName"`
	RegularMarketPrice *RawValue `json:"regularMarketPrice"`
}

// SummaryDetail carries the summaryDetail module.
type SummaryDetail struct {
	Bid              *RawValue    `json:"bid"`
	Ask              *RawValue    `json:"ask"`
	Open             *RawValue    `json:"open"`
	PreviousClose    *RawValue    `json:"previousClose"`
	DayHigh          *RawValue    `json:"dayHigh"`
	DayLow           *RawValue    `json:"dayLow"`
	FiftyTwoWeekHigh *RawValue    `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  *RawValue    `json:"fiftyTwoWeekLow"`
	Volume           *RawIntValue `json:"volume"`
	AverageVolume    *RawIntValue `json:"averageVolume"`
	MarketCap        *RawValue    `json:"marketCap"`
	TrailingPE       *RawValue    `json:"trailingPE"`
}

// Float returns the wrapped raw value, or nil when the field is absent.
func (v *RawValue) Float() *float64 {
	if v == nil {
		return nil
	}
	return v.Raw
}

// Int returns the wrapped raw value, or nil when the field is absent.
func (v *RawIntValue) Int() *int64 {
	if v == nil {
		return nil
	}
	return v.Raw
}
