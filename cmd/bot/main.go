package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	appLogger, logFile, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer logFile.Close()

	// SIGINT/SIGTERM is the only way the loop ends.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.WithError(err).Error("Poll loop stopped")
		logFile.Close()
		os.Exit(1)
	}
}

// run wires the components and polls until ctx is cancelled. Missing
// credentials end it with a nil error before anything is built.
func run(ctx context.Context, cfg *config.AppConfig, log *logrus.Logger) error {
	if !checkCredentials(cfg, log) {
		return nil
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAPIURL, cfg.HTTPTimeout)
	if err != nil {
		return fmt.Errorf("could not create Telegram bot: %w", err)
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, log)

	apiClient := practicum.NewClient(practicum.ClientConfig{
		Endpoint: cfg.PracticumEndpoint,
		Token:    cfg.PracticumToken,
		Timeout:  cfg.HTTPTimeout,
	}, log)

	poller := app.NewStatusPoller(
		apiClient,
		notifier,
		app.NewStatusFormatter(homework.DefaultVerdicts()),
		log,
		time.Now().Unix(),
	)

	pollScheduler, err := scheduler.NewPollScheduler(cfg.PollSchedule, log)
	if err != nil {
		return fmt.Errorf("could not create poll scheduler: %w", err)
	}

	log.Info("Application setup complete. Polling homework statuses...")
	err = pollScheduler.Run(ctx, poller.PollOnce)
	log.WithField("cursor", poller.Cursor()).Info("Application shut down gracefully.")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// checkCredentials logs a fatal-level entry and reports false when a credential
// is missing. The caller returns normally, so the process exits with status 0.
func checkCredentials(cfg *config.AppConfig, log *logrus.Logger) bool {
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Log(logrus.FatalLevel, "Environment variables check failed, stopping.")
		return false
	}
	log.Debug("Environment variables checked successfully.")
	return true
}
