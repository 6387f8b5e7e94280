package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

type QueryRequest struct {
	Exercises string `json:"exercises"`
	Target    string `json:"target"`
	Gender    string `json:"gender"`
	Cuisine   string `json:"cuisine"`
	Allergies string `json:"allergies"`
}

type QueryResponse struct {
	Response string `json:"response"`
}

// ErrorResponse тело ответа при ошибке.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationError перечисляет поля запроса, которые отсутствуют или не являются строками.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

// ParseQueryRequest разбирает JSON тело. Все пять полей обязательны и должны быть строками,
// пустая строка допустима.
func ParseQueryRequest(body []byte) (QueryRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return QueryRequest{}, &ValidationError{Reason: "invalid request body, expected a JSON object"}
	}

	var req QueryRequest
	fields := []struct {
		name string
		dst  *string
	}{
		{"exercises", &req.Exercises},
		{"target", &req.Target},
		{"gender", &req.Gender},
		{"cuisine", &req.Cuisine},
		{"allergies", &req.Allergies},
	}

	var bad []string
	for _, f := range fields {
		v, ok := raw[f.name]
		if !ok || json.Unmarshal(v, f.dst) != nil || string(v) == "null" {
			bad = append(bad, f.name)
		}
	}
	if len(bad) > 0 {
		return QueryRequest{}, &ValidationError{Fields: bad, Reason: "missing or non-string fields"}
	}
	return req, nil
}
