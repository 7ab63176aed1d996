package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

type StoreTheme struct {
	Id        uuid.UUID
	StoreId   uuid.UUID
	Config    theme.Config // stored document, not resolved
	Revision  int64
	UpdatedBy *uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
