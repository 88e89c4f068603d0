package calculate

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/GGmuzem/web-calculator/pkg/models"
)

// Operation бинарная арифметическая операция
type Operation func(a, b float64) float64

// operations сопоставляет символ оператора с операцией
var operations = map[string]Operation{
	"+": func(a, b float64) float64 { return a + b },
	"-": func(a, b float64) float64 { return a - b },
	"*": func(a, b float64) float64 { return a * b },
	"/": func(a, b float64) float64 { return a / b },
}

// Evaluate приводит операнды запроса к числам и выполняет операцию.
// Операнды проверяются раньше оператора.
func Evaluate(req models.CalculateRequest) (float64, error) {
	num1, err := ParseOperand(req.Num1)
	if err != nil {
		return 0, err
	}
	num2, err := ParseOperand(req.Num2)
	if err != nil {
		return 0, err
	}

	operator, ok := req.Operator.(string)
	if !ok {
		return 0, InvalidOperatorError()
	}

	return Calculate(num1, num2, operator)
}

// Calculate выполняет операцию над двумя числами
func Calculate(num1, num2 float64, operator string) (float64, error) {
	op, ok := operations[operator]
	if !ok {
		return 0, InvalidOperatorError()
	}

	// Деление на ноль проверяем до вычисления, -0 тоже равен нулю
	if operator == "/" && num2 == 0 {
		return 0, DivisionByZeroError()
	}

	return op(num1, num2), nil
}

// ParseOperand приводит JSON-значение к float64
func ParseOperand(value interface{}) (float64, error) {
	switch v := value.(type) {
	case json.Number:
		return parseFloat(v.String())
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return parseFloat(v)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	// nil, массивы, объекты
	return 0, InvalidInputError()
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	// Шестнадцатеричные числа не принимаются
	unsigned := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, InvalidInputError()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat возвращает ±Inf вместе с ErrRange для слишком больших чисел
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, InvalidInputError()
	}
	return f, nil
}
