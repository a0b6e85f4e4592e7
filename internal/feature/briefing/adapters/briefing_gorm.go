// Package adapters はbriefingフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"briefing_backend/internal/feature/briefing/domain/entity"
	"briefing_backend/internal/feature/briefing/usecase"
)

// briefingGorm はBriefingRepositoryインターフェースのGORM実装です。
type briefingGorm struct {
	db *gorm.DB
}

// briefingGormがBriefingRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.BriefingRepository = (*briefingGorm)(nil)

// NewBriefingGorm は指定されたgorm.DB接続でbriefingGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewBriefingGorm(db *gorm.DB) *briefingGorm {
	return &briefingGorm{db: db}
}

// Save はブリーフィングをデータベースに追加し、採番されたIDを返します。
func (r *briefingGorm) Save(ctx context.Context, b entity.StoredBriefing) (uint, error) {
	m := BriefingModelFromEntity(b)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return 0, err
	}
	return m.ID, nil
}

// ListRecent は生成日時の降順でブリーフィングを取得します。
func (r *briefingGorm) ListRecent(ctx context.Context, limit int) ([]entity.StoredBriefing, error) {
	var models []BriefingModel
	if err := r.db.WithContext(ctx).
		Order("generated_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}

	briefings := make([]entity.StoredBriefing, 0, len(models))
	for i := range models {
		briefings = append(briefings, models[i].ToEntity())
	}
	return briefings, nil
}

// FindByID はIDでブリーフィングを取得します。
// レコードが存在しない場合、usecase.ErrBriefingNotFoundを返します。
func (r *briefingGorm) FindByID(ctx context.Context, id uint) (entity.StoredBriefing, error) {
	var m BriefingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.StoredBriefing{}, usecase.ErrBriefingNotFound
		}
		return entity.StoredBriefing{}, err
	}
	return m.ToEntity(), nil
}
