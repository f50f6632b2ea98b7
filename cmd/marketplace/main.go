package main

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kebba/gomove/internal/pkg/config"
	"github.com/kebba/gomove/internal/pkg/database"
	"github.com/kebba/gomove/internal/pkg/health"
	"github.com/kebba/gomove/internal/pkg/jwt"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/middleware"
	"github.com/kebba/gomove/internal/pkg/models"
	natspkg "github.com/kebba/gomove/internal/pkg/nats"
	"github.com/kebba/gomove/internal/pkg/server"
	"github.com/kebba/gomove/internal/utils"
	bookingGateway "github.com/kebba/gomove/services/bookings/gateway"
	bookingHandler "github.com/kebba/gomove/services/bookings/handler"
	bookingHTTP "github.com/kebba/gomove/services/bookings/handler/http"
	bookingRepository "github.com/kebba/gomove/services/bookings/repository"
	bookingUsecase "github.com/kebba/gomove/services/bookings/usecase"
	fulfillerGateway "github.com/kebba/gomove/services/fulfillers/gateway"
	fulfillerHandler "github.com/kebba/gomove/services/fulfillers/handler"
	fulfillerHTTP "github.com/kebba/gomove/services/fulfillers/handler/http"
	fulfillerRepository "github.com/kebba/gomove/services/fulfillers/repository"
	fulfillerUsecase "github.com/kebba/gomove/services/fulfillers/usecase"
)

func main() {
	configs := config.InitConfig("")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// fulfillers service
	fulfillerRepo := fulfillerRepository.NewFulfillerRepository(configs, postgresClient.GetDB(), redisClient)
	fulfillerGW := fulfillerGateway.NewFulfillerGW(natsClient)
	fulfillerUC := fulfillerUsecase.NewFulfillerUC(configs, fulfillerRepo, fulfillerGW)

	// bookings service, consuming the fulfiller use case directly
	bookingRepo := bookingRepository.NewBookingRepository(configs, postgresClient.GetDB())
	bookingGW := bookingGateway.NewBookingGW(natsClient)
	bookingUC := bookingUsecase.NewBookingUC(configs, bookingRepo, fulfillerUC, bookingGW)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	healthHandler := health.NewHandler(
		health.NewPostgresHealthChecker(postgresClient),
		health.NewRedisHealthChecker(redisClient),
		health.NewNATSHealthChecker(natsClient),
	)
	healthHandler.RegisterRoutes(e)

	registerAuthRoutes(e, configs)
	fulfillerHandler.RegisterRoutes(e, configs, fulfillerHTTP.NewFulfillerHandler(fulfillerUC))
	bookingHandler.RegisterRoutes(e, configs, bookingHTTP.NewBookingHandler(bookingUC))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}

// tokenRequest is the payload for the development token endpoint. Identity
// lives upstream in production; this endpoint only mints tokens for the
// roles the upstream provider would assert.
type tokenRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

func registerAuthRoutes(e *echo.Echo, cfg *models.Config) {
	e.POST("/auth/token", func(c echo.Context) error {
		var req tokenRequest
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request payload")
		}
		if req.UserID == uuid.Nil {
			return utils.BadRequestResponse(c, "User ID is required")
		}
		switch req.Role {
		case models.RoleUser, models.RoleDriver, models.RoleAdmin:
		default:
			return utils.BadRequestResponse(c, "Unknown role")
		}

		token, expiresAt, err := jwt.GenerateToken(req.UserID, req.Role, cfg)
		if err != nil {
			return utils.InternalServerErrorResponse(c, "Failed to generate token")
		}

		return utils.SuccessResponse(c, http.StatusOK, "Token generated successfully", map[string]interface{}{
			"token":      token,
			"expires_at": expiresAt,
		})
	})
}
