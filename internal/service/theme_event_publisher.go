package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/logger"
	"github.com/YoussefAz2/elenashop-sub001/pkg/events"
)

// EventBus is the part of the NATS publisher the services need.
type EventBus interface {
	Publish(ctx context.Context, event events.Event) error
}

// IThemeEventPublisher emits theme domain events. Publishing never
// fails the caller; errors are logged.
type IThemeEventPublisher interface {
	PublishThemeSaved(ctx context.Context, storeId, userId uuid.UUID, revision int64, source string)
	PublishThemeSaveFailed(ctx context.Context, storeId, userId uuid.UUID, reason string)
	PublishPaletteApplied(ctx context.Context, storeId, userId uuid.UUID, paletteId string, revision int64)
	PublishTypographyApplied(ctx context.Context, storeId, userId uuid.UUID, presetId string, revision int64)
	PublishThemeReset(ctx context.Context, storeId, userId uuid.UUID, revision int64)
}

type natsThemeEventPublisher struct {
	bus    EventBus
	logger logger.ILogger
}

// NewThemeEventPublisher publishes on bus. A nil bus (NATS unavailable)
// drops every event.
func NewThemeEventPublisher(bus EventBus, log logger.ILogger) IThemeEventPublisher {
	return &natsThemeEventPublisher{bus: bus, logger: log}
}

func (p *natsThemeEventPublisher) publish(ctx context.Context, code string, storeId uuid.UUID, fields map[string]interface{}) {
	if p.bus == nil {
		return
	}
	evt := events.NewThemeEvent(code, storeId.String(), fields)
	if err := p.bus.Publish(ctx, evt); err != nil {
		p.logger.Error("THEME", "Failed to publish "+code+" event", map[string]interface{}{
			"store_id": storeId.String(),
			"error":    err.Error(),
		})
	}
}

func (p *natsThemeEventPublisher) PublishThemeSaved(ctx context.Context, storeId, userId uuid.UUID, revision int64, source string) {
	p.publish(ctx, events.ThemeSaved, storeId, map[string]interface{}{
		"user_id":  userId.String(),
		"revision": revision,
		"source":   source,
	})
}

func (p *natsThemeEventPublisher) PublishThemeSaveFailed(ctx context.Context, storeId, userId uuid.UUID, reason string) {
	p.publish(ctx, events.ThemeSaveFailed, storeId, map[string]interface{}{
		"user_id": userId.String(),
		"reason":  reason,
	})
}

func (p *natsThemeEventPublisher) PublishPaletteApplied(ctx context.Context, storeId, userId uuid.UUID, paletteId string, revision int64) {
	p.publish(ctx, events.PaletteApplied, storeId, map[string]interface{}{
		"user_id":    userId.String(),
		"palette_id": paletteId,
		"revision":   revision,
	})
}

func (p *natsThemeEventPublisher) PublishTypographyApplied(ctx context.Context, storeId, userId uuid.UUID, presetId string, revision int64) {
	p.publish(ctx, events.TypographySet, storeId, map[string]interface{}{
		"user_id":   userId.String(),
		"preset_id": presetId,
		"revision":  revision,
	})
}

func (p *natsThemeEventPublisher) PublishThemeReset(ctx context.Context, storeId, userId uuid.UUID, revision int64) {
	p.publish(ctx, events.ThemeReset, storeId, map[string]interface{}{
		"user_id":  userId.String(),
		"revision": revision,
	})
}
