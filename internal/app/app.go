package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/forumfuncionario/portal-service/config"
	"github.com/forumfuncionario/portal-service/internal/controller"
	"github.com/forumfuncionario/portal-service/internal/domain"
	kafkaDriver "github.com/forumfuncionario/portal-service/internal/infrastructure/message-queue/kafka"
	"github.com/forumfuncionario/portal-service/internal/infrastructure/tracing"
	appmiddleware "github.com/forumfuncionario/portal-service/internal/middleware"
	"github.com/forumfuncionario/portal-service/internal/repository"
	"github.com/forumfuncionario/portal-service/internal/service"
	"github.com/forumfuncionario/portal-service/pkg/response"
	"github.com/forumfuncionario/portal-service/pkg/utils"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	segmentio "github.com/segmentio/kafka-go"
)

type App struct {
	IdentityDB *sqlx.DB
	PayrollDB  *sqlx.DB
	Config     *config.Config
	Server     *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("portal-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Empty prefix so metrics aggregate across services without renaming
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")

	g.Use(appmiddleware.RequestID)
	g.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("URI", v.URI).
				Int("status", v.Status).
				Int64("latency", v.Latency.Microseconds()).
				Str("remote IP", v.RemoteIP).
				Msg("Request")

			return nil
		},
	}))

	isLoggedIn := appmiddleware.JWTAuth(app.Config.JWTConfig)
	isAdmin := appmiddleware.RequireRoles(domain.RoleAdmin)

	var kafkaProducer *segmentio.Conn
	if app.Config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer = kafkaDriver.CreateKafkaProducer(app.Config)
	}

	mailer := utils.NewSMTPMailer(app.Config.SMTPConfig.Server, app.Config.SMTPConfig.Port, app.Config.SMTPConfig.User, app.Config.SMTPConfig.Password)

	userRepo := repository.CreateNewUserRepository(app.IdentityDB)
	protheusRepo := repository.CreateNewProtheusRepository(app.PayrollDB)
	postRepo := repository.CreateNewPostRepository(app.IdentityDB)
	employeeRepo := repository.CreateNewEmployeeRepository(app.PayrollDB)
	ramalRepo := repository.CreateNewRamalRepository(app.IdentityDB)

	authSvc := service.CreateNewAuthService(userRepo, protheusRepo, *app.Config, kafkaProducer, mailer)
	postSvc := service.CreateNewPostService(postRepo)
	employeeSvc := service.CreateNewEmployeeService(employeeRepo)
	ramalSvc := service.CreateNewRamalService(ramalRepo)

	controller.CreateAuthController(g, authSvc, isLoggedIn, isAdmin)
	controller.CreatePostController(g, postSvc, isLoggedIn)
	controller.CreateEmployeeController(g, employeeSvc)
	controller.CreateRamalController(g, ramalSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
