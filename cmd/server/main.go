package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/katakuxiko/mealplanner/internal/api"
	"github.com/katakuxiko/mealplanner/internal/config"
	"github.com/katakuxiko/mealplanner/internal/logging"
	"github.com/katakuxiko/mealplanner/internal/service"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	// services
	llm := service.NewLLMClient(cfg)
	plans := service.NewMealPlanService(llm, log)

	// api
	app := api.NewApp(log)
	api.RegisterRoutes(app, plans, llm, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	log.WithFields(logrus.Fields{"addr": cfg.ServerAddr, "model": cfg.ChatModel}).Info("server started")
	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Fatal(err)
	}
}
