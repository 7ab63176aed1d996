package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StoreTheme holds the single theme document of a store. Config is the
// stored (unresolved) document, elementOverrides included.
type StoreTheme struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreId   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Config    datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	Revision  int64          `gorm:"not null;default:0"`
	UpdatedBy *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (StoreTheme) TableName() string {
	return "store_themes"
}
