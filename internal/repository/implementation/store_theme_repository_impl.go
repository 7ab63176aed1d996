package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/YoussefAz2/elenashop-sub001/internal/entity"
	"github.com/YoussefAz2/elenashop-sub001/internal/mapper"
	"github.com/YoussefAz2/elenashop-sub001/internal/model"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/contract"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/specification"
)

type StoreThemeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StoreThemeMapper
}

func NewStoreThemeRepository(db *gorm.DB) contract.StoreThemeRepository {
	return &StoreThemeRepositoryImpl{
		db:     db,
		mapper: mapper.NewStoreThemeMapper(),
	}
}

func (r *StoreThemeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StoreThemeRepositoryImpl) Save(ctx context.Context, theme *entity.StoreTheme) error {
	m := r.mapper.ToModel(theme)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	m.Revision = 1

	// One row per store: a second save replaces the document and bumps
	// the revision in place.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"config":     m.Config,
			"updated_by": m.UpdatedBy,
			"revision":   gorm.Expr("store_themes.revision + 1"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	var saved model.StoreTheme
	if err := r.db.WithContext(ctx).Where("store_id = ?", m.StoreId).First(&saved).Error; err != nil {
		return err
	}
	*theme = *r.mapper.ToEntity(&saved)
	return nil
}

func (r *StoreThemeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StoreTheme, error) {
	var m model.StoreTheme
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StoreThemeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StoreTheme, error) {
	var models []*model.StoreTheme
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StoreThemeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.StoreTheme{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
