package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"aqi-notifier/config"
	v1 "aqi-notifier/internal/controllers/http/v1"
	"aqi-notifier/internal/notifiers"
	"aqi-notifier/internal/repositories"
	"aqi-notifier/internal/scheduler"
	"aqi-notifier/internal/services/digest"
	"aqi-notifier/pkg/httpserver"
	"aqi-notifier/pkg/logger"
	"aqi-notifier/pkg/observe"
)

// @title AQI Notifier
// @version 1.0.0
// @description Daily weather and particulate-matter digest delivered to Telegram.
// @BasePath /
// @schemes http https

// @tag.name Digest
// @tag.description Digest job trigger
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	writers := []io.Writer{os.Stdout}

	var hook *observe.SentryHook
	if cnf.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.AppEnv, cnf.AppName, 0, !cnf.IsProduction(), cnf.SentryDSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.AppName, logger.Options{
		AppEnv: cnf.AppEnv,
		Level:  cnf.LogLevel,
	}, writers...)

	if hook != nil {
		hook.SetLogger(l)
	}

	// Per-request deadlines come from the context; this is only a backstop.
	httpClient := &http.Client{Timeout: 30 * time.Second}

	weatherRepo, airRepo := repositories.InitRepositories(cnf, l, httpClient)

	notifier := notifiers.NewTelegramNotifier(
		cnf.TelegramBaseURL,
		cnf.TelegramBotToken,
		cnf.TelegramChatID,
		l,
		httpClient,
	)

	service := digest.NewDigestService(cnf, weatherRepo, airRepo, notifier, l)

	app := httpserver.InitFiberServer(cnf.AppName, func(*fiber.Ctx) bool {
		_, err := cnf.Location()
		return err == nil
	})

	v1.NewRouter(
		app,
		service,
		l,
	)

	sched := scheduler.New(cnf.Schedule, 2*cnf.FetchTimeout, service, l)
	if err := sched.Start(); err != nil {
		l.Fatal("cannot start the scheduler", map[string]any{"err": err})
	}

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Port,
		"location": cnf.LocationName,
		"schedule": cnf.Schedule,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		sched.Stop()
		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
