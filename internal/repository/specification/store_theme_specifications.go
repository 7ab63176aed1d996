package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByStoreID struct {
	StoreID uuid.UUID
}

func (s ByStoreID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("store_id = ?", s.StoreID)
}

// UpdatedSince keeps themes changed at or after Since.
type UpdatedSince struct {
	Since time.Time
}

func (s UpdatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("updated_at >= ?", s.Since)
}
