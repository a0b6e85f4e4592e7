package adapters

import (
	"time"

	"briefing_backend/internal/feature/briefing/domain/entity"
)

// BriefingModel is the GORM model for the briefings table.
type BriefingModel struct {
	ID            uint      `gorm:"primaryKey"`
	Ticker        string    `gorm:"size:16;index;not null"`
	Category      string    `gorm:"size:32;index;not null"`
	GeneratedAt   time.Time `gorm:"index;not null"`
	Price         float64   `gorm:"not null"`
	ChangePercent float64   `gorm:"not null"`
	Content       string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM.
func (BriefingModel) TableName() string {
	return "briefings"
}

// ToEntity converts the GORM model to a domain entity.
func (m *BriefingModel) ToEntity() entity.StoredBriefing {
	return entity.StoredBriefing{
		ID:            m.ID,
		Ticker:        m.Ticker,
		Category:      m.Category,
		GeneratedAt:   m.GeneratedAt,
		Price:         m.Price,
		ChangePercent: m.ChangePercent,
		Content:       m.Content,
	}
}

// BriefingModelFromEntity converts a domain entity to a GORM model.
func BriefingModelFromEntity(b entity.StoredBriefing) *BriefingModel {
	return &BriefingModel{
		ID:            b.ID,
		Ticker:        b.Ticker,
		Category:      b.Category,
		GeneratedAt:   b.GeneratedAt,
		Price:         b.Price,
		ChangePercent: b.ChangePercent,
		Content:       b.Content,
	}
}
