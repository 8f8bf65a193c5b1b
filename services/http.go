package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	docs "github.com/aroma-labs/aroma_api/docs"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"

	"github.com/aroma-labs/aroma_api/services/handlers"
	"github.com/aroma-labs/aroma_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc       *AuthService
	trainingSvc   *TrainingService
	sessionSvc    *SessionService
	progressSvc   *ProgressService
	scentSvc      *ScentService
	mediaSvc      *MediaService
	rateLimitSvc  *RateLimitService
	monitoringSvc *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.trainingSvc = svc.Service(TRAINING_SVC).(*TrainingService)
	svc.sessionSvc = svc.Service(SESSION_SVC).(*SessionService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.scentSvc = svc.Service(SCENT_SVC).(*ScentService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	docs.SwaggerInfo.BasePath = ""

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	if os.Getenv("LOG_LEVEL") == "TRACE" {
		app.Use(logger.New())
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Use(MonitoringMiddleware(svc.monitoringSvc))
	app.Use(svc.rateLimitSvc.IPRateLimit())

	//Validation endpoints
	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return svc.handleError(c, shared.NewNotFoundError(errors.New("page not found"), "Page not found"))
	})

	svc.server = app

	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	trainingHandler := handlers.NewTrainingHandler(svc.trainingSvc)
	sessionHandler := handlers.NewSessionHandler(svc.sessionSvc)
	progressHandler := handlers.NewProgressHandler(svc.progressSvc, svc.mediaSvc)
	scentHandler := handlers.NewScentHandler(svc.scentSvc, svc.mediaSvc)

	v1 := app.Group("/api/v1")

	v1.Get("/ping", svc.ping)
	v1.Get("/scents", scentHandler.GetScents)

	auth := svc.authSvc.RequiredAuth()

	training := v1.Group("/training", auth)
	training.Post("/start", svc.rateLimitSvc.RateLimit("session_start"), trainingHandler.StartSession)
	training.Post("/begin", trainingHandler.BeginSession)
	training.Get("/state", trainingHandler.GetState)
	training.Post("/pause", trainingHandler.PauseSession)
	training.Post("/resume", trainingHandler.ResumeSession)
	training.Post("/restart", trainingHandler.RestartPhase)
	training.Post("/skip", trainingHandler.SkipPhase)
	training.Post("/rate", trainingHandler.SubmitRating)
	training.Post("/abandon", trainingHandler.AbandonSession)

	v1.Get("/sessions", auth, sessionHandler.GetSessions)
	v1.Post("/sessions", auth, svc.rateLimitSvc.RateLimit("session_complete"), sessionHandler.AppendSession)
	v1.Get("/sessions/:sessionId", auth, sessionHandler.GetSession)

	v1.Get("/stats", auth, progressHandler.GetStats)
	v1.Get("/achievements", auth, progressHandler.GetAchievements)
	v1.Get("/moments", auth, progressHandler.GetMoments)
	v1.Post("/share", auth, svc.rateLimitSvc.RateLimit("share"), progressHandler.CreateShareContent)
	v1.Post("/share/card", auth, svc.rateLimitSvc.StrictRateLimit(), svc.rateLimitSvc.RateLimit("share"), progressHandler.UploadShareCard)

	v1.Get("/collection", auth, scentHandler.GetCollection)
	v1.Post("/collection", auth, scentHandler.AddToCollection)
	v1.Delete("/collection/:scentId", auth, scentHandler.RemoveFromCollection)

	v1.Post("/scents/:scentId/image", auth, svc.rateLimitSvc.StrictRateLimit(), scentHandler.UploadScentImage)
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, nil)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
