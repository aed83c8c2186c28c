package main

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"os"

	"github.com/hanksha/condo-amenity-hub/announcement"
	"github.com/hanksha/condo-amenity-hub/api"
	bk "github.com/hanksha/condo-amenity-hub/booking"
	"github.com/hanksha/condo-amenity-hub/config"
	"github.com/hanksha/condo-amenity-hub/metrics"
	"github.com/hanksha/condo-amenity-hub/parcel"
	"github.com/hanksha/condo-amenity-hub/request"
	"github.com/hanksha/condo-amenity-hub/session"
	"github.com/hanksha/condo-amenity-hub/store"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed database/setup.sql
var setupSQL string

func main() {
	logger := slog.Default().With("component", "main")

	err := godotenv.Load()

	if err != nil {
		logger.Warn("no .env file loaded", "err", err)
	}

	cfg, err := config.Load()

	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	var (
		bookingRepo      bk.BookingRepository
		parcelRepo       parcel.ParcelRepository
		requestRepo      request.RequestRepository
		announcementRepo announcement.AnnouncementRepository
	)

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		logger.Info("connecting to PostgreSQL database")
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)

		if err != nil {
			logger.Error("Unable to connect to database", "err", err)
			os.Exit(1)
		}

		defer pool.Close()

		_, err = pool.Exec(context.Background(), setupSQL)
		if err != nil {
			logger.Error("failed to initialize tables", "err", err)
			os.Exit(1)
		} else {
			logger.Info("initialized database tables")
		}

		bookingRepo = bk.NewRepository(pool)
		parcelRepo = parcel.NewRepository(pool)
		requestRepo = request.NewRepository(pool)
		announcementRepo = announcement.NewRepository(pool)
	default:
		logger.Info("using data file", "path", cfg.DataFile)
		file, err := store.OpenFile(cfg.DataFile)

		if err != nil {
			logger.Error("failed to open data file", "err", err)
			os.Exit(1)
		}

		if bookingRepo, err = bk.NewFileRepository(file); err != nil {
			logger.Error("invalid bookings in data file", "err", err)
			os.Exit(1)
		}

		if parcelRepo, err = parcel.NewFileRepository(file); err != nil {
			logger.Error("invalid packages in data file", "err", err)
			os.Exit(1)
		}

		if requestRepo, err = request.NewFileRepository(file); err != nil {
			logger.Error("invalid service requests in data file", "err", err)
			os.Exit(1)
		}

		if announcementRepo, err = announcement.NewFileRepository(file); err != nil {
			logger.Error("invalid announcements in data file", "err", err)
			os.Exit(1)
		}
	}

	bookingMetrics := metrics.New()

	bookingService := bk.NewService(
		bookingRepo,
		bk.Observers{bk.NewResidentNotice(slog.Default()), bookingMetrics},
		bk.WithMinDate(cfg.MinDate()),
		bk.WithFacilities(cfg.Facilities),
		bk.WithPolicy(cfg.Policy()),
	)

	if err := bookingService.Load(context.Background()); err != nil {
		logger.Error("failed to load bookings", "err", err)
		os.Exit(1)
	}

	parcelService := parcel.NewService(parcelRepo)
	requestService := request.NewService(requestRepo)
	announcementService := announcement.NewService(announcementRepo)

	for _, svc := range []interface{ Load(context.Context) error }{parcelService, requestService, announcementService} {
		if err := svc.Load(context.Background()); err != nil {
			logger.Error("failed to load records", "err", err)
			os.Exit(1)
		}
	}

	sessions := session.NewStore(cfg.SessionTTL)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/metrics", gin.WrapH(bookingMetrics.Handler()))

	// SESSION API

	sessionHandler := api.NewSessionHandler(sessions)

	sessionHandler.Register(r.Group("/api/session"))

	// BOOKING API

	bookingRouter := r.Group("/api/v1/bookings")
	bookingRouter.Use(api.SessionAuth(sessions))
	bookingHandler := api.NewBookingHandler(bookingService)

	bookingHandler.Register(bookingRouter)

	// PACKAGE, REQUEST AND ANNOUNCEMENT API

	parcelRouter := r.Group("/api/v1/packages")
	parcelRouter.Use(api.SessionAuth(sessions))
	api.NewParcelHandler(parcelService).Register(parcelRouter)

	requestRouter := r.Group("/api/v1/requests")
	requestRouter.Use(api.SessionAuth(sessions))
	api.NewRequestHandler(requestService).Register(requestRouter)

	announcementRouter := r.Group("/api/v1/announcements")
	announcementRouter.Use(api.SessionAuth(sessions))
	api.NewAnnouncementHandler(announcementService).Register(announcementRouter)

	// ADMIN DASHBOARD

	summaryRouter := r.Group("/api/v1/summary")
	summaryRouter.Use(api.SessionAuth(sessions))
	api.NewDashboardHandler(bookingService, parcelService, requestService).Register(summaryRouter)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Error("server stopped", "err", err)
	}
}
