package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoussefAz2/elenashop-sub001/internal/dto"
	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/logger"
	"github.com/YoussefAz2/elenashop-sub001/pkg/events"
	"github.com/YoussefAz2/elenashop-sub001/pkg/override"
	"github.com/YoussefAz2/elenashop-sub001/pkg/palette"
	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

type themeFixture struct {
	svc       IThemeService
	factory   *memoryFactory
	bus       *recordingBus
	publisher *recordingPublisher
}

func newThemeFixture() *themeFixture {
	f := &themeFixture{
		factory:   newMemoryFactory(),
		bus:       &recordingBus{},
		publisher: &recordingPublisher{},
	}
	f.svc = NewThemeService(f.factory, palette.NewCatalog(), f.publisher, NewThemeEventPublisher(f.bus, logger.NewNopLogger()))
	return f
}

func TestThemeService_GetUnsavedStoreReturnsDefaults(t *testing.T) {
	f := newThemeFixture()
	store := uuid.New()

	res, err := f.svc.Get(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, store, res.StoreId)
	assert.Zero(t, res.Revision)
	assert.Equal(t, theme.Defaults(), res.Config)
}

func TestThemeService_UpdateResolvesAndKeepsOverrides(t *testing.T) {
	f := newThemeFixture()
	ctx := context.Background()
	store, user := uuid.New(), uuid.New()

	_, err := f.svc.PersistOverrides(ctx, &dto.SaveThemeMessage{
		StoreId:   store,
		UserId:    user,
		Overrides: override.Map{"hero-title": {Color: "#FF0000"}},
	})
	require.NoError(t, err)

	res, err := f.svc.Update(ctx, store, user, &dto.UpdateThemeRequest{Config: theme.Config{
		theme.KeyGlobal: map[string]interface{}{
			"colors": map[string]interface{}{"primary": "#123456"},
		},
	}})
	require.NoError(t, err)

	assert.EqualValues(t, 2, res.Revision)
	assert.Equal(t, "#123456", res.Config.String(theme.KeyGlobal, "colors", "primary"))
	assert.Equal(t, theme.Defaults().String(theme.KeyGlobal, "colors", "text"), res.Config.String(theme.KeyGlobal, "colors", "text"))
	assert.Equal(t, "#FF0000", res.Config.String(theme.KeyElementOverrides, "hero-title", "color"))

	last := f.bus.last()
	require.NotNil(t, last)
	assert.Equal(t, events.ThemeSaved, last.EventType())
	assert.Equal(t, SourceUpdate, last.Payload()["source"])
	assert.Equal(t, store.String(), events.StoreID(last))
}

func TestThemeService_UpdateWithOverridesReplacesThem(t *testing.T) {
	f := newThemeFixture()
	ctx := context.Background()
	store, user := uuid.New(), uuid.New()

	_, err := f.svc.PersistOverrides(ctx, &dto.SaveThemeMessage{
		StoreId:   store,
		UserId:    user,
		Overrides: override.Map{"hero-title": {Color: "#FF0000"}},
	})
	require.NoError(t, err)

	res, err := f.svc.Update(ctx, store, user, &dto.UpdateThemeRequest{Config: theme.Config{
		theme.KeyElementOverrides: map[string]interface{}{
			"cta":   map[string]interface{}{"fontWeight": "700", "bogus": 1.0},
			"empty": map[string]interface{}{},
		},
	}})
	require.NoError(t, err)

	overrides := override.Decode(res.Config.Object(theme.KeyElementOverrides))
	assert.Equal(t, override.Map{"cta": {FontWeight: "700"}}, overrides)
}

func TestThemeService_ApplyPalette(t *testing.T) {
	f := newThemeFixture()
	ctx := context.Background()
	store, user := uuid.New(), uuid.New()

	res, err := f.svc.ApplyPalette(ctx, store, user, &dto.ApplyPaletteRequest{PaletteId: "ocean"})
	require.NoError(t, err)

	ocean, _ := palette.NewCatalog().Palette("ocean")
	assert.Equal(t, ocean.Colors.Primary, res.Config.String(theme.KeyGlobal, "colors", "primary"))
	assert.EqualValues(t, 1, res.Revision)
	assert.Equal(t, []string{events.PaletteApplied}, f.bus.codes())
	assert.Equal(t, 1, f.factory.log.commits)
}

func TestThemeService_ApplyUnknownPaletteRollsBack(t *testing.T) {
	f := newThemeFixture()
	ctx := context.Background()
	store := uuid.New()

	_, err := f.svc.ApplyPalette(ctx, store, uuid.New(), &dto.ApplyPaletteRequest{PaletteId: "neon"})
	require.ErrorIs(t, err, palette.ErrPaletteNotFound)

	_, err = f.svc.ApplyTypography(ctx, store, uuid.New(), &dto.ApplyTypographyRequest{PresetId: "gothic"})
	require.ErrorIs(t, err, palette.ErrPresetNotFound)

	assert.Equal(t, 2, f.factory.log.rollbacks)
	assert.Zero(t, f.factory.log.commits)
	assert.Empty(t, f.bus.codes())
	count, _ := f.factory.repo.Count(ctx)
	assert.Zero(t, count)
}

func TestThemeService_ApplyTypography(t *testing.T) {
	f := newThemeFixture()

	res, err := f.svc.ApplyTypography(context.Background(), uuid.New(), uuid.New(), &dto.ApplyTypographyRequest{PresetId: "editorial"})
	require.NoError(t, err)
	assert.Equal(t, "Cormorant Garamond", res.Config.String(theme.KeyGlobal, "typography", "headingFont"))
	assert.Equal(t, []string{events.TypographySet}, f.bus.codes())
}

func TestThemeService_ResetClearsOverrides(t *testing.T) {
	f := newThemeFixture()
	ctx := context.Background()
	store, user := uuid.New(), uuid.New()

	_, err := f.svc.ApplyPalette(ctx, store, user, &dto.ApplyPaletteRequest{PaletteId: "forest"})
	require.NoError(t, err)
	_, err = f.svc.PersistOverrides(ctx, &dto.SaveThemeMessage{
		StoreId:   store,
		UserId:    user,
		Overrides: override.Map{"cta": {Color: "#000"}},
	})
	require.NoError(t, err)

	res, err := f.svc.Reset(ctx, store, user)
	require.NoError(t, err)
	assert.Equal(t, theme.Defaults(), res.Config)
	assert.EqualValues(t, 3, res.Revision)
	assert.Equal(t, events.ThemeReset, f.bus.last().EventType())
}

func TestThemeService_SaveOverridesQueuesMessage(t *testing.T) {
	f := newThemeFixture()
	msg := &dto.SaveThemeMessage{
		StoreId:    uuid.New(),
		UserId:     uuid.New(),
		SessionKey: "a:b",
		Sequence:   7,
		Overrides:  override.Map{"cta": {TextAlign: "center"}},
	}

	require.NoError(t, f.svc.SaveOverrides(context.Background(), msg))
	require.Len(t, f.publisher.payloads, 1)

	var decoded dto.SaveThemeMessage
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &decoded))
	assert.Equal(t, msg.Sequence, decoded.Sequence)
	assert.Equal(t, msg.Overrides, decoded.Overrides)
	assert.Empty(t, f.bus.codes())
}

func TestThemeService_PersistFailureRollsBack(t *testing.T) {
	f := newThemeFixture()
	f.factory.repo.failSave = true

	_, err := f.svc.PersistOverrides(context.Background(), &dto.SaveThemeMessage{StoreId: uuid.New(), UserId: uuid.New()})
	require.ErrorIs(t, err, errSaveFailed)
	assert.Equal(t, 1, f.factory.log.rollbacks)
}

func TestThemeService_List(t *testing.T) {
	f := newThemeFixture()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.svc.Reset(ctx, uuid.New(), uuid.New())
		require.NoError(t, err)
	}

	res, err := f.svc.List(ctx, &dto.ListThemesRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Total)
	assert.Len(t, res.Items, 3)

	_, err = f.svc.List(ctx, &dto.ListThemesRequest{Since: "yesterday"})
	assert.Error(t, err)
}

func TestThemeEventPublisher_NilBusIsSilent(t *testing.T) {
	p := NewThemeEventPublisher(nil, logger.NewNopLogger())
	assert.NotPanics(t, func() {
		p.PublishThemeSaved(context.Background(), uuid.New(), uuid.New(), 1, SourceUpdate)
	})
}
