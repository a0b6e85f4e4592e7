// Package usecase はブリーフィング組み立てのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrValidation は入力不正（空のティッカー・不正なカテゴリ・解決不能な銘柄）を表します。
	// 組み立てレイヤーは唯一エラーを呼び出し元へ伝播するコンポーネントであり、
	// API層はこのエラーをクライアントエラーレスポンスへ変換します。
	ErrValidation = errors.New("validation error")

	// ErrBriefingNotFound is returned when a stored briefing cannot be found by ID.
	ErrBriefingNotFound = errors.New("briefing not found")

	// ErrRepositoryNotConfigured is returned when persistence is required but no repository is wired.
	ErrRepositoryNotConfigured = errors.New("briefing repository is not configured")
)
