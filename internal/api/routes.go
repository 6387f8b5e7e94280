package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/katakuxiko/mealplanner/internal/metrics"
	"github.com/katakuxiko/mealplanner/internal/model"
	"github.com/katakuxiko/mealplanner/internal/service"
	"github.com/sirupsen/logrus"
)

// NewApp создаёт fiber приложение с общими middleware.
// Ошибки, не обработанные в хендлерах, отдаются как {"detail": "..."}.
func NewApp(log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "mealplanner",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(requestID())
	app.Use(observe(log))
	app.Use(recover.New())
	return app
}

func RegisterRoutes(app *fiber.App, plans *service.MealPlanService, llm *service.LLMClient, log *logrus.Logger) {
	h := NewHandler(plans, llm, log)

	app.Get("/health", h.Health)
	app.Get("/models", h.ListModels)
	app.Get("/metrics", metrics.Handler())
	app.Post("/query", h.Query)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(model.ErrorResponse{Detail: err.Error()})
}
