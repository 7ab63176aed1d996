package contract

import (
	"context"

	"github.com/YoussefAz2/elenashop-sub001/internal/entity"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/specification"
)

type StoreThemeRepository interface {
	// Save inserts or replaces the document of theme.StoreId and bumps
	// its revision.
	Save(ctx context.Context, theme *entity.StoreTheme) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StoreTheme, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StoreTheme, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
