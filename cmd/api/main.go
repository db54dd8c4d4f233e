package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/changil/changilweb-server/api/routes"
	"github.com/changil/changilweb-server/internal/config"
	"github.com/changil/changilweb-server/internal/handlers"
	"github.com/changil/changilweb-server/internal/middleware"
	"github.com/changil/changilweb-server/internal/models"
	mongorepo "github.com/changil/changilweb-server/internal/repositories/mongodb"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/changil/changilweb-server/internal/session"
	"github.com/changil/changilweb-server/internal/siteroute"
	"github.com/changil/changilweb-server/pkg/jwt"
	"github.com/changil/changilweb-server/pkg/mongodb"
	"github.com/changil/changilweb-server/pkg/objectstore"
	"github.com/gin-gonic/gin"
	"github.com/topi314/tint"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		slog.Error("Failed to load configuration", tint.Err(err))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", tint.Err(err))
		os.Exit(1)
	}
	logger.Info("Server exiting")
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	} else if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		AddSource:  cfg.IsDevelopment(),
		TimeFormat: time.DateTime,
		NoColor:    !cfg.IsDevelopment(),
	}))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.TimeoutDuration())
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("Error disconnecting from MongoDB", tint.Err(err))
		}
	}()
	logger.Info("Connected to MongoDB", slog.String("database", cfg.MongoDB.Database))

	db := mongoClient.Database(cfg.MongoDB.Database)
	if err := mongorepo.EnsureIndexes(ctx, db, logger); err != nil {
		return err
	}

	loc := cfg.Site.Location()
	models.SetRequestLocation(loc)
	if cfg.Admin.PasswordHash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH is not set, admin login is disabled")
	}
	if cfg.JWT.Secret == "" {
		logger.Warn("JWT_SECRET is not set, admin tokens use an ephemeral key")
	}

	// Repositories
	sermonRepo := mongorepo.NewSermonRepository(db)
	bulletinRepo := mongorepo.NewBulletinRepository(db)
	eventRepo := mongorepo.NewEventRepository(db)
	galleryRepo := mongorepo.NewGalleryImageRepository(db)
	postRepo := mongorepo.NewGalleryPostRepository(db)
	popupRepo := mongorepo.NewPopupRepository(db)
	scheduleRepo := mongorepo.NewPastorScheduleRepository(db)
	receiptRepo := mongorepo.NewDonationReceiptRepository(db)

	// Services
	tokens := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenTTL())
	storage := objectstore.NewClient(cfg.Storage.URL, cfg.Storage.Key, cfg.Storage.Mock)
	authService := services.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, tokens)
	popupService := services.NewPopupService(popupRepo)

	// Handlers
	cookies := session.NewCookieStore(cfg.Session.Secret, cfg.Session.Name, cfg.Session.Secure)
	guard := session.NewGuard()

	deps := routes.HandlerDependencies{
		Logger:      logger,
		AdminAuth:   middleware.AdminAuthMiddleware(authService, cookies, guard, logger),
		HealthCheck: mongoClient.Ping,

		SermonHandler:          handlers.NewSermonHandler(services.NewSermonService(sermonRepo)),
		BulletinHandler:        handlers.NewBulletinHandler(services.NewBulletinService(bulletinRepo)),
		EventHandler:           handlers.NewEventHandler(services.NewEventService(eventRepo)),
		GalleryHandler:         handlers.NewGalleryHandler(services.NewGalleryService(galleryRepo), services.NewGalleryPostService(postRepo)),
		PopupHandler:           handlers.NewPopupHandler(popupService, cookies, logger),
		PastorScheduleHandler:  handlers.NewPastorScheduleHandler(services.NewPastorScheduleService(scheduleRepo, loc), loc),
		DonationReceiptHandler: handlers.NewDonationReceiptHandler(services.NewDonationReceiptService(receiptRepo)),
		AuthHandler:            handlers.NewAuthHandler(authService, cookies, guard, logger),
		SiteHandler: handlers.NewSiteHandler(siteroute.NewResolver(), cookies, models.SiteConfig{
			LogoPath:       cfg.Site.LogoPath,
			ImageBucket:    cfg.Storage.ImageBucket,
			BulletinBucket: cfg.Storage.BulletinBucket,
		}),
		UploadHandler: handlers.NewUploadHandler(services.NewUploadService(storage, cfg.Storage.ImageBucket, cfg.Storage.BulletinBucket)),
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:              ":" + config.GetEnv("PORT", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("addr", srv.Addr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
