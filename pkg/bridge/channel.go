package bridge

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// AnyOrigin in the allow list accepts every origin.
const AnyOrigin = "*"

// Channel is the origin-checked link between previews and the editor.
// Publishing never waits for a consumer and delivery order is not
// guaranteed; envelopes from origins outside the allow list are
// dropped on receipt.
type Channel struct {
	pubSub  *gochannel.GoChannel
	topic   string
	allowed map[string]struct{}
	logger  watermill.LoggerAdapter
}

func NewChannel(pubSub *gochannel.GoChannel, topic string, allowedOrigins []string, logger watermill.LoggerAdapter) *Channel {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = normalizeOrigin(o)
		if o != "" {
			allowed[o] = struct{}{}
		}
	}
	return &Channel{pubSub: pubSub, topic: topic, allowed: allowed, logger: logger}
}

func normalizeOrigin(o string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(o)), "/")
}

// Allowed reports whether origin may post to the editor.
func (c *Channel) Allowed(origin string) bool {
	if _, ok := c.allowed[AnyOrigin]; ok {
		return true
	}
	_, ok := c.allowed[normalizeOrigin(origin)]
	return ok
}

// Publish sends m on behalf of origin to the editor named target.
func (c *Channel) Publish(origin, target string, m Message) error {
	payload, err := json.Marshal(Envelope{Origin: origin, Target: target, Message: m})
	if err != nil {
		return err
	}
	return c.pubSub.Publish(c.topic, message.NewMessage(watermill.NewUUID(), payload))
}

// Poster returns a Poster bound to origin and target. Publish failures
// are logged and otherwise ignored.
func (c *Channel) Poster(origin, target string) Poster {
	return PosterFunc(func(m Message) {
		if err := c.Publish(origin, target, m); err != nil {
			c.logger.Error("bridge publish failed", err, watermill.LogFields{
				"origin":     origin,
				"target":     target,
				"section_id": m.SectionID,
			})
		}
	})
}

// Subscribe delivers accepted messages to handle until ctx is done.
func (c *Channel) Subscribe(ctx context.Context, handle func(Envelope)) error {
	messages, err := c.pubSub.Subscribe(ctx, c.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.deliver(msg, handle)
		}
	}()
	return nil
}

func (c *Channel) deliver(msg *message.Message, handle func(Envelope)) {
	defer msg.Ack()

	var env Envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		c.logger.Error("bridge message malformed", err, watermill.LogFields{"uuid": msg.UUID})
		return
	}
	if !c.Allowed(env.Origin) {
		c.logger.Info("bridge message dropped", watermill.LogFields{"origin": env.Origin})
		return
	}
	if env.Message.Type != EditSection || env.Message.SectionID == "" {
		return
	}
	handle(env)
}
