// Package usecase は銘柄スナップショット正規化のビジネスロジックを実装します。
package usecase

import "errors"

// ErrSymbolNotFound is returned by market repositories when the provider
// reports that no quote exists for the requested symbol. It is distinguished
// from transport failures so the snapshot can be marked as an error instead
// of degrading to defaults.
var ErrSymbolNotFound = errors.New("symbol not found")
