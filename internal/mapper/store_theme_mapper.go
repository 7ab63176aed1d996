package mapper

import (
	"time"

	"gorm.io/datatypes"

	"github.com/YoussefAz2/elenashop-sub001/internal/entity"
	"github.com/YoussefAz2/elenashop-sub001/internal/model"
	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

type StoreThemeMapper struct{}

func NewStoreThemeMapper() *StoreThemeMapper {
	return &StoreThemeMapper{}
}

// ToEntity decodes the stored document. A document that is not a JSON
// object decodes as empty; resolution fills it with defaults.
func (m *StoreThemeMapper) ToEntity(t *model.StoreTheme) *entity.StoreTheme {
	if t == nil {
		return nil
	}

	cfg, err := theme.Parse(t.Config)
	if err != nil {
		cfg = theme.Config{}
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.StoreTheme{
		Id:        t.Id,
		StoreId:   t.StoreId,
		Config:    cfg,
		Revision:  t.Revision,
		UpdatedBy: t.UpdatedBy,
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *StoreThemeMapper) ToModel(t *entity.StoreTheme) *model.StoreTheme {
	if t == nil {
		return nil
	}

	data, err := t.Config.JSON()
	if err != nil || t.Config == nil {
		data = []byte("{}")
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.StoreTheme{
		Id:        t.Id,
		StoreId:   t.StoreId,
		Config:    datatypes.JSON(data),
		Revision:  t.Revision,
		UpdatedBy: t.UpdatedBy,
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *StoreThemeMapper) ToEntities(themes []*model.StoreTheme) []*entity.StoreTheme {
	entities := make([]*entity.StoreTheme, len(themes))
	for i, t := range themes {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
