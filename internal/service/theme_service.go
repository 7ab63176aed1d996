package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/YoussefAz2/elenashop-sub001/internal/dto"
	"github.com/YoussefAz2/elenashop-sub001/internal/entity"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/specification"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/unitofwork"
	"github.com/YoussefAz2/elenashop-sub001/pkg/override"
	"github.com/YoussefAz2/elenashop-sub001/pkg/palette"
	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

// Sources reported in THEME_SAVED events.
const (
	SourceUpdate    = "update"
	SourceOverrides = "overrides"
)

type IThemeService interface {
	ListPalettes() []palette.Palette
	ListTypography() []palette.TypographyPreset
	List(ctx context.Context, req *dto.ListThemesRequest) (*dto.ListThemesResponse, error)
	Get(ctx context.Context, storeId uuid.UUID) (*dto.ThemeResponse, error)
	Update(ctx context.Context, storeId, userId uuid.UUID, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error)
	Reset(ctx context.Context, storeId, userId uuid.UUID) (*dto.ThemeResponse, error)
	ApplyPalette(ctx context.Context, storeId, userId uuid.UUID, req *dto.ApplyPaletteRequest) (*dto.ThemeResponse, error)
	ApplyTypography(ctx context.Context, storeId, userId uuid.UUID, req *dto.ApplyTypographyRequest) (*dto.ThemeResponse, error)

	// SaveOverrides queues msg for the persistence consumer and returns
	// without waiting for the write.
	SaveOverrides(ctx context.Context, msg *dto.SaveThemeMessage) error
	// PersistOverrides writes the override map into the stored document.
	PersistOverrides(ctx context.Context, msg *dto.SaveThemeMessage) (*entity.StoreTheme, error)
}

type themeService struct {
	uowFactory       unitofwork.RepositoryFactory
	catalog          *palette.Catalog
	publisherService IPublisherService
	events           IThemeEventPublisher
}

func NewThemeService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *palette.Catalog,
	publisherService IPublisherService,
	events IThemeEventPublisher,
) IThemeService {
	return &themeService{
		uowFactory:       uowFactory,
		catalog:          catalog,
		publisherService: publisherService,
		events:           events,
	}
}

func (s *themeService) ListPalettes() []palette.Palette {
	return s.catalog.Palettes()
}

func (s *themeService) ListTypography() []palette.TypographyPreset {
	return s.catalog.TypographyPresets()
}

func (s *themeService) List(ctx context.Context, req *dto.ListThemesRequest) (*dto.ListThemesResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = 20
	}

	filters := make([]specification.Specification, 0, 1)
	if req.Since != "" {
		since, err := time.Parse(time.RFC3339, req.Since)
		if err != nil {
			return nil, fmt.Errorf("invalid since: %w", err)
		}
		filters = append(filters, specification.UpdatedSince{Since: since})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.StoreThemeRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)
	themes, err := uow.StoreThemeRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ThemeSummary, 0, len(themes))
	for _, t := range themes {
		items = append(items, dto.ThemeSummary{StoreId: t.StoreId, Revision: t.Revision, UpdatedAt: t.UpdatedAt})
	}
	return &dto.ListThemesResponse{Items: items, Total: total}, nil
}

// Get returns the resolved document of storeId. A store without a saved
// theme gets the defaults at revision 0.
func (s *themeService) Get(ctx context.Context, storeId uuid.UUID) (*dto.ThemeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stored, err := uow.StoreThemeRepository().FindOne(ctx, specification.ByStoreID{StoreID: storeId})
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return &dto.ThemeResponse{StoreId: storeId, Config: theme.Defaults()}, nil
	}
	return toThemeResponse(stored), nil
}

func (s *themeService) Update(ctx context.Context, storeId, userId uuid.UUID, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error) {
	saved, err := s.mutate(ctx, storeId, userId, func(current theme.Config) (theme.Config, error) {
		next := theme.Resolve(req.Config)
		// A document without overrides keeps the stored ones.
		overrides := next.Object(theme.KeyElementOverrides)
		if _, ok := req.Config[theme.KeyElementOverrides]; !ok {
			overrides = current.Object(theme.KeyElementOverrides)
		}
		next.Set(override.Decode(overrides).Tree(), theme.KeyElementOverrides)
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	s.events.PublishThemeSaved(ctx, storeId, userId, saved.Revision, SourceUpdate)
	return toThemeResponse(saved), nil
}

func (s *themeService) Reset(ctx context.Context, storeId, userId uuid.UUID) (*dto.ThemeResponse, error) {
	saved, err := s.mutate(ctx, storeId, userId, func(theme.Config) (theme.Config, error) {
		return theme.Defaults(), nil
	})
	if err != nil {
		return nil, err
	}
	s.events.PublishThemeReset(ctx, storeId, userId, saved.Revision)
	return toThemeResponse(saved), nil
}

func (s *themeService) ApplyPalette(ctx context.Context, storeId, userId uuid.UUID, req *dto.ApplyPaletteRequest) (*dto.ThemeResponse, error) {
	saved, err := s.mutate(ctx, storeId, userId, func(current theme.Config) (theme.Config, error) {
		return s.catalog.Apply(req.PaletteId, current)
	})
	if err != nil {
		return nil, err
	}
	s.events.PublishPaletteApplied(ctx, storeId, userId, req.PaletteId, saved.Revision)
	return toThemeResponse(saved), nil
}

func (s *themeService) ApplyTypography(ctx context.Context, storeId, userId uuid.UUID, req *dto.ApplyTypographyRequest) (*dto.ThemeResponse, error) {
	saved, err := s.mutate(ctx, storeId, userId, func(current theme.Config) (theme.Config, error) {
		return s.catalog.ApplyTypography(req.PresetId, current)
	})
	if err != nil {
		return nil, err
	}
	s.events.PublishTypographyApplied(ctx, storeId, userId, req.PresetId, saved.Revision)
	return toThemeResponse(saved), nil
}

func (s *themeService) SaveOverrides(ctx context.Context, msg *dto.SaveThemeMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payload)
}

func (s *themeService) PersistOverrides(ctx context.Context, msg *dto.SaveThemeMessage) (*entity.StoreTheme, error) {
	return s.mutate(ctx, msg.StoreId, msg.UserId, func(current theme.Config) (theme.Config, error) {
		current.Set(msg.Overrides.Prune().Tree(), theme.KeyElementOverrides)
		return current, nil
	})
}

// mutate loads the resolved document of storeId, applies fn and saves
// the result in one transaction.
func (s *themeService) mutate(ctx context.Context, storeId, userId uuid.UUID, fn func(theme.Config) (theme.Config, error)) (saved *entity.StoreTheme, err error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = uow.Rollback()
		}
	}()

	stored, err := uow.StoreThemeRepository().FindOne(ctx, specification.ByStoreID{StoreID: storeId})
	if err != nil {
		return nil, err
	}
	var current theme.Config
	if stored != nil {
		current = stored.Config
	}

	next, err := fn(theme.Resolve(current))
	if err != nil {
		return nil, err
	}

	record := &entity.StoreTheme{StoreId: storeId, Config: next, UpdatedBy: &userId}
	if err = uow.StoreThemeRepository().Save(ctx, record); err != nil {
		return nil, err
	}
	if err = uow.Commit(); err != nil {
		return nil, err
	}
	return record, nil
}

func toThemeResponse(t *entity.StoreTheme) *dto.ThemeResponse {
	return &dto.ThemeResponse{
		StoreId:   t.StoreId,
		Revision:  t.Revision,
		Config:    theme.Resolve(t.Config),
		UpdatedAt: t.UpdatedAt,
	}
}
