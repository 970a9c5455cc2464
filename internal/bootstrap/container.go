package bootstrap

import (
	"context"
	"time"

	"knowex-be/internal/config"
	"knowex-be/internal/controller"
	"knowex-be/internal/handler"
	"knowex-be/internal/pkg/logger"
	"knowex-be/internal/repository/memory"
	"knowex-be/internal/service"
	"knowex-be/internal/websocket"
	pktNats "knowex-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

const jobsTopic = "knowex.jobs"

type Container struct {
	// Controllers
	SessionController     controller.ISessionController
	WizardController      controller.IWizardController
	EnhancementController controller.IEnhancementController
	CatalogController     controller.ICatalogController
	ChatController        controller.IChatController
	NavigationController  controller.INavigationController

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	NotificationService service.INotificationService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	SessionRepository *memory.SessionRepository
	Logger            logger.ILogger

	closers []func()
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	return NewContainerWithLogger(cfg, sysLogger, logger.NewIsolatedLogger(cfg.App.WsLogFilePath))
}

// NewContainerWithLogger wires everything around the given loggers. Tests
// pass no-op loggers to keep log files out of the tree.
func NewContainerWithLogger(cfg *config.Config, sysLogger, wsLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Event Bus (simulated background jobs)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 2. Infrastructure, all optional
	var natsPub service.EventPublisher
	var natsSub service.EventSubscriber
	if cfg.App.NatsURL != "" {
		if pub, err := pktNats.NewPublisher(cfg.App.NatsURL); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			natsPub = pub
			c.closers = append(c.closers, pub.Close)
		}
		if sub, err := pktNats.NewSubscriber(cfg.App.NatsURL); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS Subscriber", map[string]interface{}{"error": err.Error()})
		} else {
			natsSub = sub
			c.closers = append(c.closers, sub.Close)
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
		}
		cancel()
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// 3. WebSocket Hub and sessions. An expired or deleted session takes
	// its sockets with it.
	wsHub := websocket.NewHub(rdb, wsLogger)
	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL, wsHub.Disconnect)

	// 4. Services
	notifService := service.NewNotificationService(natsPub, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery
	publisherService := service.NewPublisherService(jobsTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		jobsTopic,
		sessionRepo,
		notifService,
		cfg.Simulation,
		sysLogger,
	)

	sessionService := service.NewSessionService(sessionRepo, sysLogger)
	wizardService := service.NewWizardService(publisherService, notifService, sysLogger)
	enhancementService := service.NewEnhancementService(publisherService)
	catalogService := service.NewCatalogService()
	chatService := service.NewChatService(cfg.Simulation.ChatReplyDelay, sysLogger)

	// 5. Controllers
	c.SessionController = controller.NewSessionController(sessionService, sessionRepo)
	c.WizardController = controller.NewWizardController(wizardService, sessionRepo)
	c.EnhancementController = controller.NewEnhancementController(enhancementService, sessionRepo)
	c.CatalogController = controller.NewCatalogController(catalogService)
	c.ChatController = controller.NewChatController(chatService, sessionRepo)
	c.NavigationController = controller.NewNavigationController()

	c.ConsumerService = consumerService
	c.NotificationService = notifService
	c.NotificationHandler = handler.NewNotificationHandler(sessionRepo, wsHub, wsLogger)
	c.WebSocketHub = wsHub
	c.SessionRepository = sessionRepo

	return c
}

// Close releases the connections opened by NewContainer, newest first.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
