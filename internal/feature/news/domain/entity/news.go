// Package entity defines the domain models for the news feature.
package entity

import "time"

// NewsItem は1銘柄に関連する記事です。生成後は変更されません。
// TitleとURLは常に存在します（プロバイダーが省略した場合は空文字列）。
type NewsItem struct {
	Title          string
	Summary        string
	Source         string // Fixed provider label
	URL            string
	PublishedAt    time.Time // Falls back to fetch time when unparseable
	RelatedTickers []string  // Contains at least the query ticker
}

// RawArticle は検索プロバイダーが返す生記事の中間レコードです。
// 欠落しうるフィールドはポインタで表現し、パース処理はusecase側で行います。
type RawArticle struct {
	Title         *string
	URL           *string
	PublishedDate *string
	Text          *string
}

// Status は検索結果の状態を表します。
type Status string

const (
	StatusSuccess Status = "success"
	// StatusEmpty は「該当ニュースなし」という正常な状態を表します。エラーではありません。
	StatusEmpty Status = "empty"
	StatusError Status = "error"
)

// ErrorType values carried on failed searches.
const (
	ErrorTypeValidation     = "validation_error"
	ErrorTypeProvider       = "provider_error"
	ErrorTypeNotInitialized = "api_not_initialized"
)

// SearchResult はAPI向けのリッチな検索結果です。
type SearchResult struct {
	Status    Status
	Ticker    string
	Query     string
	ErrorType string // Set iff Status is StatusError
	Message   string // Set iff Status is not StatusSuccess
	News      []NewsItem
}
