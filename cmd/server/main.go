package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcalendar "github.com/p2p/backend/internal/application/calendar"
	appnotification "github.com/p2p/backend/internal/application/notification"
	"github.com/p2p/backend/internal/infrastructure/auth"
	"github.com/p2p/backend/internal/infrastructure/cache"
	"github.com/p2p/backend/internal/infrastructure/config"
	"github.com/p2p/backend/internal/infrastructure/logger"
	"github.com/p2p/backend/internal/infrastructure/persistence"
	"github.com/p2p/backend/internal/interfaces/http/handler"
	"github.com/p2p/backend/internal/interfaces/http/middleware"
	"github.com/p2p/backend/internal/interfaces/http/router"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", zap.Error(err))
		}
	}()
	log.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	// Redis is optional. Without it the notification unread counter is
	// computed from the database on every request.
	var unreadCache appnotification.UnreadCountCache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, notification counts will not be cached", zap.Error(err))
	} else {
		unreadCache = cache.NewRedisNotificationCache(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("failed to close redis client", zap.Error(err))
			}
		}()
		log.Info("redis connected", zap.String("host", cfg.Redis.Host))
	}

	sessions := auth.NewSessionService(cfg.Session)

	limiter := appcalendar.NewDetailLimiter(cfg.Calendar.DetailConcurrency)
	providers := []appcalendar.EventProvider{
		appcalendar.NewRequisitionProvider(persistence.NewRequisitionStore(db.DB), limiter),
		appcalendar.NewQuotationRequestProvider(persistence.NewQuotationRequestStore(db.DB), limiter),
		appcalendar.NewQuotationRegistrationProvider(persistence.NewQuotationRegistrationStore(db.DB), limiter),
		appcalendar.NewOrderProvider(persistence.NewOrderStore(db.DB), limiter),
		appcalendar.NewReceiptProvider(persistence.NewReceiptStore(db.DB), limiter),
		appcalendar.NewReturnProvider(persistence.NewReturnStore(db.DB), limiter),
		appcalendar.NewQualityCheckProvider(persistence.NewQualityCheckStore(db.DB), limiter),
		appcalendar.NewStockRefillProvider(persistence.NewStockRefillStore(db.DB), limiter),
		appcalendar.NewJustInTimeProvider(persistence.NewJustInTimeStore(db.DB), limiter),
		appcalendar.NewMaterialPlanningProvider(persistence.NewMaterialPlanningStore(db.DB), limiter),
	}

	feedService := appcalendar.NewFeedService(
		persistence.NewPermissionRepository(db.DB),
		providers,
		log,
	)
	notificationService := appnotification.NewService(
		persistence.NewNotificationRepository(db.DB),
		unreadCache,
		log,
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("failed to set trusted proxies", zap.Error(err))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		logger.GinMiddleware(log),
		middleware.CORSWithConfig(corsConfig),
		middleware.Session(sessions),
	)

	router.NewRouter(engine).
		Register(handler.NewSystemHandler(db)).
		Register(handler.NewCalendarHandler(feedService, log)).
		Register(handler.NewNotificationHandler(notificationService)).
		Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
