package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotObject тело запроса не является JSON-объектом
var ErrNotObject = errors.New("request body must be a JSON object")

// CalculateRequest запрос на вычисление одной бинарной операции.
// Операнды приходят как произвольные JSON-значения и приводятся к числу при вычислении.
type CalculateRequest struct {
	Num1     interface{} `json:"num1"`
	Num2     interface{} `json:"num2"`
	Operator interface{} `json:"operator"`
}

// UnmarshalJSON ищет поля только по точным именам num1, num2 и operator.
// Числа сохраняются как json.Number.
func (r *CalculateRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return err
	}
	if fields == nil {
		return ErrNotObject
	}

	*r = CalculateRequest{
		Num1:     fields["num1"],
		Num2:     fields["num2"],
		Operator: fields["operator"],
	}
	return nil
}

// CalculateResponse ответ сервиса: либо результат, либо ошибка
type CalculateResponse struct {
	Result *float64 `json:"result,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// ResultResponse создает успешный ответ
func ResultResponse(result float64) CalculateResponse {
	return CalculateResponse{Result: &result}
}

// ErrorResponse создает ответ с ошибкой
func ErrorResponse(message string) CalculateResponse {
	return CalculateResponse{Error: message}
}
