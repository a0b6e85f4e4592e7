package api

// MessageResponse is a simple confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest は/loginエンドポイントのリクエストボディを表します。
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse はログイン成功時に返されるJWTトークンです。
type TokenResponse struct {
	Token string `json:"token"`
}

// StockDetailResponse is the payload for GET /api/stocks/:ticker.
type StockDetailResponse struct {
	StockSnapshotResponse
	News []NewsItemResponse `json:"news"`
}

// TrendingResponse is the payload for GET /api/stocks/trending.
type TrendingResponse struct {
	Category  string                 `json:"category"`
	Status    string                 `json:"status"`
	ErrorType string                 `json:"error_type,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Stock     *StockSnapshotResponse `json:"stock,omitempty"`
	News      []NewsItemResponse     `json:"news"`
}

// SearchNewsResponse is the payload for the news search endpoints.
type SearchNewsResponse struct {
	Status    string             `json:"status"`
	Ticker    string             `json:"ticker,omitempty"`
	Query     string             `json:"query"`
	ErrorType string             `json:"error_type,omitempty"`
	Message   string             `json:"message,omitempty"`
	News      []NewsItemResponse `json:"news"`
}

// GenerateBriefingRequest is the body for POST /api/briefing/generate.
type GenerateBriefingRequest struct {
	Ticker   string `json:"ticker" binding:"required"`
	Category string `json:"category"`
}

// BriefingResponse is the payload for a freshly generated briefing.
type BriefingResponse struct {
	Ticker      string                `json:"ticker"`
	Category    string                `json:"category"`
	GeneratedAt string                `json:"generated_at"`
	Stock       StockSnapshotResponse `json:"stock"`
	News        []NewsItemResponse    `json:"news"`
	Summary     string                `json:"summary,omitempty"`
	Content     string                `json:"content"`
}

// StoredBriefingResponse is the payload for persisted briefings.
type StoredBriefingResponse struct {
	ID            uint    `json:"id"`
	Ticker        string  `json:"ticker"`
	Category      string  `json:"category"`
	GeneratedAt   string  `json:"generated_at"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	Content       string  `json:"content"`
}

// DailyRunResponse is the payload for POST /api/briefing/run.
type DailyRunResponse struct {
	Generated int                      `json:"generated"`
	Briefings []StoredBriefingResponse `json:"briefings"`
}
