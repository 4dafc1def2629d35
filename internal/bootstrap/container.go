package bootstrap

import (
	"context"
	"log"

	"shared-notes-be/internal/config"
	"shared-notes-be/internal/controller"
	"shared-notes-be/internal/pkg/logger"
	"shared-notes-be/internal/pkg/serverutils"
	"shared-notes-be/internal/repository/cache"
	"shared-notes-be/internal/repository/memory"
	"shared-notes-be/internal/repository/unitofwork"
	"shared-notes-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	UserController controller.IUserController
	NoteController controller.INoteController

	// Background Services (Exposed for main.go to run)
	ActivityService service.IActivityService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	activityLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Token Store (Redis when configured, in-memory otherwise)
	tokenStore := newTokenStore(cfg.App.RedisURL)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	activityService := service.NewActivityService(
		pubSub,
		cfg.App.ActivityTopic,
		uowFactory,
		activityLogger,
	)

	authService := service.NewAuthService(uowFactory, tokenStore, cfg.Auth, publisherService)
	userService := service.NewUserService(uowFactory)
	noteService := service.NewNoteService(uowFactory, publisherService)

	// 5. Route Guard
	authMw := serverutils.NewAuthMiddleware(cfg.Auth.JwtSecret, tokenStore, uowFactory)

	sysLogger.Info("bootstrap", "container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	// 6. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService, authMw),
		UserController: controller.NewUserController(userService, authMw),
		NoteController: controller.NewNoteController(noteService, authMw),

		ActivityService: activityService,
	}
}

// newTokenStore connects to Redis when a URL is configured; a failed
// ping falls back to the in-process store so single-node deployments
// run without Redis.
func newTokenStore(redisURL string) cache.TokenStore {
	if redisURL == "" {
		log.Println("[INFO] REDIS_URL not set, using in-memory token store")
		return memory.NewTokenStore()
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: redisURL,
		}
	}

	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory token store", err)
		return memory.NewTokenStore()
	}

	return cache.NewRedisTokenStore(rdb)
}
