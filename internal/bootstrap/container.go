package bootstrap

import (
	"context"
	"errors"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/YoussefAz2/elenashop-sub001/internal/config"
	"github.com/YoussefAz2/elenashop-sub001/internal/controller"
	"github.com/YoussefAz2/elenashop-sub001/internal/handler"
	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/logger"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/memory"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/unitofwork"
	"github.com/YoussefAz2/elenashop-sub001/internal/service"
	"github.com/YoussefAz2/elenashop-sub001/internal/websocket"
	"github.com/YoussefAz2/elenashop-sub001/pkg/bridge"
	"github.com/YoussefAz2/elenashop-sub001/pkg/clock"
	"github.com/YoussefAz2/elenashop-sub001/pkg/editor"
	pktNats "github.com/YoussefAz2/elenashop-sub001/pkg/nats"
	"github.com/YoussefAz2/elenashop-sub001/pkg/palette"
)

type Container struct {
	// Controllers
	ThemeController  controller.IThemeController
	EditorController controller.IEditorController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	EditorSocketHandler *handler.EditorSocketHandler
	WebSocketHub        *websocket.Hub

	closers []func()
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	bridgeLogger := logger.NewIsolatedLogger(cfg.App.BridgeLogFilePath)

	catalog := palette.NewCatalog()
	if cfg.Editor.PaletteFile != "" {
		if err := catalog.LoadFile(cfg.Editor.PaletteFile); err != nil {
			log.Fatalf("[FATAL] Failed to load palettes: %v", err)
		}
		log.Printf("[INFO] Loaded palette file %s (%d palettes)", cfg.Editor.PaletteFile, len(catalog.Palettes()))
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c := &Container{}
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS
	var eventBus service.EventBus
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventBus = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		c.closers = append(c.closers, natsSub.Close)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis, sockets stay local: %v", err)
		_ = rdb.Close()
		rdb = nil
	} else {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(rdb, bridgeLogger)
	go wsHub.Run(ctx)

	// 4. Services
	themeEvents := service.NewThemeEventPublisher(eventBus, sysLogger)
	publisherService := service.NewPublisherService(cfg.Editor.SaveTopic, pubSub)
	themeService := service.NewThemeService(uowFactory, catalog, publisherService, themeEvents)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Editor.SaveTopic,
		themeService,
		themeEvents,
		sysLogger,
	)

	sessions := memory.NewEditorSessionRepository(cfg.Editor.SessionTTL)
	sessions.OnEvicted(func(key string, _ *editor.Session) {
		sysLogger.Info("EDITOR", "Session expired", map[string]interface{}{"session": key})
	})
	editorService := service.NewEditorService(sessions, themeService, wsHub, cfg.Editor, clock.Real(), sysLogger)

	// Bridge: previews post edit messages, the channel routes them to
	// the session named by the envelope target.
	channel := bridge.NewChannel(pubSub, cfg.Editor.BridgeTopic, cfg.Editor.BridgeAllowedOrigins, watermillLogger)
	if err := channel.Subscribe(ctx, func(env bridge.Envelope) {
		if err := editorService.HandleBridge(env); err != nil && !errors.Is(err, service.ErrSessionNotFound) {
			bridgeLogger.Warn("BRIDGE", "Dropped bridge message", map[string]interface{}{
				"target": env.Target,
				"error":  err.Error(),
			})
		}
	}); err != nil {
		log.Fatalf("[FATAL] Failed to subscribe to bridge topic: %v", err)
	}

	if natsSub != nil {
		themeEventService := service.NewThemeEventService(natsSub, wsHub, bridgeLogger)
		if err := themeEventService.Start(ctx); err != nil {
			log.Printf("[WARN] Theme events will not reach editors: %v", err)
		}
	}

	// 5. Controllers
	c.ThemeController = controller.NewThemeController(themeService)
	c.EditorController = controller.NewEditorController(editorService)
	c.EditorSocketHandler = handler.NewEditorSocketHandler(editorService, channel, wsHub, cfg.Editor, clock.Real(), bridgeLogger)
	c.WebSocketHub = wsHub
	c.ConsumerService = consumerService
	c.closers = append(c.closers, func() {
		_ = sysLogger.Sync()
		_ = bridgeLogger.Sync()
	})
	return c
}

// Close releases the connections opened by NewContainer.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
