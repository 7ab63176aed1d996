package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/YoussefAz2/elenashop-sub001/internal/dto"
	"github.com/YoussefAz2/elenashop-sub001/internal/entity"
	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/logger"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// ThemePersister writes queued override maps.
type ThemePersister interface {
	PersistOverrides(ctx context.Context, msg *dto.SaveThemeMessage) (*entity.StoreTheme, error)
}

// consumerService drains the save topic. Failed writes are reported as
// THEME_SAVE_FAILED and acknowledged; the next committed change carries
// the complete map again.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	persister ThemePersister
	events    IThemeEventPublisher
	logger    logger.ILogger

	mu      sync.Mutex
	written map[string]savePosition
}

// savePosition orders the saves of one store:user pair across
// reopened sessions.
type savePosition struct {
	generation uint64
	sequence   uint64
}

func (p savePosition) after(o savePosition) bool {
	if p.generation != o.generation {
		return p.generation > o.generation
	}
	return p.sequence > o.sequence
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	persister ThemePersister,
	events IThemeEventPublisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		persister: persister,
		events:    events,
		logger:    log,
		written:   make(map[string]savePosition),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.SaveThemeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("THEME_CONSUMER", "Failed to unmarshal save message", map[string]interface{}{"error": err.Error()})
		return
	}

	if cs.stale(&payload) {
		cs.logger.Debug("THEME_CONSUMER", "Skipping superseded save", map[string]interface{}{
			"store_id": payload.StoreId.String(),
			"sequence": payload.Sequence,
		})
		return
	}

	saved, err := cs.persister.PersistOverrides(ctx, &payload)
	if err != nil {
		cs.logger.Error("THEME_CONSUMER", "Failed to persist overrides", map[string]interface{}{
			"store_id": payload.StoreId.String(),
			"error":    err.Error(),
		})
		cs.events.PublishThemeSaveFailed(ctx, payload.StoreId, payload.UserId, err.Error())
		return
	}

	cs.logger.Info("THEME_CONSUMER", "Overrides persisted", map[string]interface{}{
		"store_id": payload.StoreId.String(),
		"revision": saved.Revision,
		"elements": len(payload.Overrides),
	})
	cs.events.PublishThemeSaved(ctx, payload.StoreId, payload.UserId, saved.Revision, SourceOverrides)
}

// stale reports whether a newer save of the same editor was already
// taken, and records payload's position otherwise. A reopened session
// starts a new generation, so its first save outranks every save of the
// previous one.
func (cs *consumerService) stale(payload *dto.SaveThemeMessage) bool {
	if payload.SessionKey == "" {
		return false
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	pos := savePosition{generation: payload.Generation, sequence: payload.Sequence}
	if last, ok := cs.written[payload.SessionKey]; ok && !pos.after(last) {
		return true
	}
	cs.written[payload.SessionKey] = pos
	return false
}
