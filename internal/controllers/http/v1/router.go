package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "aqi-notifier/docs"
	"aqi-notifier/internal/services/digest"
	"aqi-notifier/pkg/logger"
)

// DigestRunner runs one digest job.
type DigestRunner interface {
	Run(ctx context.Context, dryRun bool) (digest.Result, error)
}

type routes struct {
	service DigestRunner
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	digestService DigestRunner,
	l *logger.Logger,
) {
	r := &routes{
		service: digestService,
		l:       l,
	}

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// Method checks happen in the handler so other verbs get a JSON 405.
	app.All("/api/cron", r.handleCron)
	app.All("/cron", r.handleCron)
}
