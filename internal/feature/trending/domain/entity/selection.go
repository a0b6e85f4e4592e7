// Package entity defines the domain models for the trending feature.
package entity

import (
	"strings"

	quoteentity "briefing_backend/internal/feature/quote/domain/entity"
)

// Category はスクリーナーの選定基準を表します。
type Category string

const (
	// CategoryMostActives selects the most traded symbols by volume.
	CategoryMostActives Category = "most_actives"
	// CategoryDayGainers selects the largest daily gainers.
	CategoryDayGainers Category = "day_gainers"
	// CategoryDayLosers selects the largest daily losers.
	CategoryDayLosers Category = "day_losers"
)

// AllCategories は許可されたスクリーナーカテゴリの一覧です。
var AllCategories = []Category{CategoryMostActives, CategoryDayGainers, CategoryDayLosers}

// Valid はカテゴリが許可された値かどうかを返します。
func (c Category) Valid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

// AllowedCategoryNames はエラーメッセージ用にカテゴリ名をカンマ区切りで返します。
func AllowedCategoryNames() string {
	names := make([]string, 0, len(AllCategories))
	for _, c := range AllCategories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// Status はスクリーナークエリの結果状態を表します。
type Status string

const (
	StatusSuccess Status = "success"
	// StatusEmpty は「トレンド銘柄なし」という正常な市場状態を表します。エラーではありません。
	StatusEmpty Status = "empty"
	StatusError Status = "error"
)

// ErrorType values carried on failed selections.
const (
	ErrorTypeValidation = "validation_error"
	ErrorTypeProvider   = "provider_error"
)

// ScreenerQuote はスクリーナーが返す1候補の中間レコードです。
type ScreenerQuote struct {
	Symbol    string
	ShortName string
}

// TrendingSelection はスクリーナークエリの結果です。
// TopStockはStatusがStatusSuccessの場合のみ設定されます。
type TrendingSelection struct {
	Category  Category
	Status    Status
	ErrorType string // Set iff Status is StatusError
	Message   string // Human-readable explanation, set iff Status is not StatusSuccess
	TopStock  *quoteentity.StockSnapshot
}
