package dto

// ScreenerResponse represents the JSON response from the predefined screener endpoint.
type ScreenerResponse struct {
	Finance struct {
		Result []ScreenerResult `json:"result"`
		Error  *APIError        `json:"error"`
	} `json:"finance"`
}

// ScreenerResult holds one screener's ranked quote list.
type ScreenerResult struct {
	Quotes []ScreenerQuote `json:"quotes"`
}

// ScreenerQuote is a single ranked candidate from a screener.
type ScreenerQuote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
}
