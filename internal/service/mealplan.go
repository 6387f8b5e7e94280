package service

import (
	"context"
	"fmt"

	"github.com/katakuxiko/mealplanner/internal/model"
	"github.com/katakuxiko/mealplanner/internal/util"
	"github.com/sirupsen/logrus"
)

// SystemPrompt фиксированная инструкция для модели.
const SystemPrompt = `1.) Your only role is to provide people a diet plan for 1 week
2.) You will be given the workout routine and the target which a person is trying to achieve along with it with the type of cuisine they prefer
3.) Understand the workout plan they follow along with the target they plan to achieve
4.) After COMPLETELY understanding the input, you have to generate a 7 day meal plan consisting of breakfast, lunch and dinner.
5.) MOST IMPORTANT: Your only job is to UNDERSTAND completely and generate a proper 7 day meal plan based on the TARGET, Cuisine, and Allergies 
6.) If you see a "+" under target it means they are trying to put on weight, but if you see a "-" it means they are trying to lose weight
7.) You should clearly mention the quantity of the food which is supposed to be taken CLEARLY ALWAYS along with the calories and protein present!!!!
`

const queryPreviewRunes = 300

// Completer отправляет пару system/user сообщений в completion API.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type MealPlanService struct {
	llm Completer
	log *logrus.Logger
}

func NewMealPlanService(llm Completer, log *logrus.Logger) *MealPlanService {
	return &MealPlanService{llm: llm, log: log}
}

// BuildQuery подставляет поля запроса в шаблон сообщения пользователя.
func BuildQuery(req model.QueryRequest) string {
	return fmt.Sprintf(
		"Give a 7 day meal plan under the %s cuisine for a %s, who follows these exercises %s to reach the target of %s. Allergies to this person are %s.",
		req.Cuisine, req.Gender, req.Exercises, req.Target, req.Allergies,
	)
}

// Generate формирует запрос и возвращает ответ модели как есть.
func (s *MealPlanService) Generate(ctx context.Context, req model.QueryRequest) (model.QueryResponse, error) {
	query := BuildQuery(req)
	s.log.WithField("query", util.TruncateRunes(query, queryPreviewRunes)).Debug("formed query sentence")

	text, err := s.llm.Complete(ctx, SystemPrompt, query)
	if err != nil {
		return model.QueryResponse{}, fmt.Errorf("generate meal plan: %w", err)
	}
	return model.QueryResponse{Response: text}, nil
}
