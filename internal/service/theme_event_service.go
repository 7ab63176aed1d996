package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/YoussefAz2/elenashop-sub001/internal/dto"
	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/logger"
	"github.com/YoussefAz2/elenashop-sub001/pkg/events"
	pktNats "github.com/YoussefAz2/elenashop-sub001/pkg/nats"
)

// ThemeEventDurable is the durable consumer shared by every instance;
// each event reaches one of them and the hub relays the frame.
const ThemeEventDurable = "theme-editor-worker"

// EventSubscriber is the part of the NATS subscriber the service needs.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject string, durableName string, handler pktNats.EventHandler) error
}

var themeEventFrames = map[string]string{
	events.ThemeSaved:      dto.FrameThemeSaved,
	events.ThemeSaveFailed: dto.FrameThemeSaveFailed,
	events.ThemeReset:      dto.FrameThemeReset,
	events.PaletteApplied:  dto.FramePaletteApplied,
	events.TypographySet:   dto.FrameTypography,
}

// ThemeEventService forwards theme events to the editors connected to
// the store.
type ThemeEventService struct {
	subscriber EventSubscriber
	delivery   SocketDelivery
	logger     logger.ILogger
}

func NewThemeEventService(sub EventSubscriber, delivery SocketDelivery, log logger.ILogger) *ThemeEventService {
	return &ThemeEventService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *ThemeEventService) Start(ctx context.Context) error {
	subject := pktNats.Subject(">")
	if err := s.subscriber.Subscribe(ctx, subject, ThemeEventDurable, s.handleEvent); err != nil {
		s.logger.Error("THEME_EVENTS", "Failed to start theme event subscriber", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.logger.Info("THEME_EVENTS", "Listening to "+subject, nil)
	return nil
}

func (s *ThemeEventService) handleEvent(ctx context.Context, event events.Event) error {
	frameType, ok := themeEventFrames[event.EventType()]
	if !ok {
		return nil
	}

	storeId, err := uuid.Parse(events.StoreID(event))
	if err != nil {
		s.logger.Warn("THEME_EVENTS", "Event without a valid store_id", map[string]interface{}{"type": event.EventType()})
		return nil
	}
	frame := dto.NewSocketFrame(frameType, event.Payload())

	// A failed save only concerns the editor whose change was lost.
	if event.EventType() == events.ThemeSaveFailed {
		if raw, ok := event.Payload()["user_id"].(string); ok {
			if userId, err := uuid.Parse(raw); err == nil {
				s.delivery.SendToUser(storeId, userId, dto.RoleHost, frame)
				return nil
			}
		}
	}

	s.delivery.SendToStore(storeId, dto.RoleHost, frame)
	return nil
}
