package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/katakuxiko/mealplanner/internal/model"
	"github.com/katakuxiko/mealplanner/internal/service"
	"github.com/sirupsen/logrus"
)

// Handler хранит зависимости для обработчиков
type Handler struct {
	plans *service.MealPlanService
	llm   *service.LLMClient
	log   *logrus.Logger
}

// NewHandler конструктор
func NewHandler(plans *service.MealPlanService, llm *service.LLMClient, log *logrus.Logger) *Handler {
	return &Handler{plans: plans, llm: llm, log: log}
}

// Health простая проверка
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// ListModels проксирует список моделей Groq
func (h *Handler) ListModels(c *fiber.Ctx) error {
	models, err := h.llm.ListModels(c.UserContext())
	if err != nil {
		h.log.WithError(err).WithField("request_id", requestIDFrom(c)).Error("list models failed")
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Detail: err.Error()})
	}
	return c.JSON(models)
}

// Query принимает параметры человека и возвращает недельный план питания от модели.
// Любая ошибка при генерации отдаётся как 500 с текстом ошибки.
func (h *Handler) Query(c *fiber.Ctx) error {
	req, err := model.ParseQueryRequest(c.Body())
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ErrorResponse{Detail: err.Error()})
	}

	resp, err := h.plans.Generate(c.UserContext(), req)
	if err != nil {
		h.log.WithError(err).WithField("request_id", requestIDFrom(c)).Error("meal plan generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Detail: err.Error()})
	}
	return c.JSON(resp)
}
