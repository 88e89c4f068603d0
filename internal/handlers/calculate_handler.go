package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/GGmuzem/web-calculator/internal/calculate"
	"github.com/GGmuzem/web-calculator/pkg/models"
)

// Максимальный размер тела запроса на вычисление
const maxBodyBytes = 1 << 20

// CalculateHandler обрабатывает POST-запросы с двумя операндами и оператором.
// Метод проверяется и здесь, чтобы обработчик можно было подключить без роутера.
func CalculateHandler(w http.ResponseWriter, r *http.Request) {
	// Проверка метода
	if r.Method != http.MethodPost {
		WriteJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse("Method not allowed"))
		return
	}

	// Парсинг тела запроса
	var req models.CalculateRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		handleError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}
	// После объекта в теле ничего не должно быть
	if _, err := decoder.Token(); err != io.EOF {
		handleError(w, errors.New("invalid request body: unexpected data after JSON object"))
		return
	}

	// Проверка операндов и вычисление
	result, err := calculate.Evaluate(req)
	if err != nil {
		handleError(w, err)
		return
	}

	// Успешный ответ
	WriteJSON(w, http.StatusOK, models.ResultResponse(result))
}

func handleError(w http.ResponseWriter, err error) {
	var calcErr *calculate.CalcError
	if errors.As(err, &calcErr) {
		WriteJSON(w, calcErr.Status(), models.ErrorResponse(calcErr.Message))
		return
	}
	WriteJSON(w, http.StatusInternalServerError, models.ErrorResponse(err.Error()))
}

// WriteJSON кодирует ответ до записи заголовков. Если значение не кодируется
// (например, результат ±Inf или NaN), клиент получает 500 с описанием ошибки.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("WriteJSON: не удалось закодировать ответ: %v", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(models.ErrorResponse(err.Error()))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
