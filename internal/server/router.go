package server

import (
	"io"
	"net/http"

	"github.com/GGmuzem/web-calculator/internal/handlers"
	"github.com/gorilla/mux"
)

// NewRouter собирает маршруты HTTP API и статических файлов.
// Порядок обёрток: CORS -> идентификатор запроса -> журнал -> восстановление после паники -> маршрутизатор.
func NewRouter(staticDir, indexFile string, accessLog io.Writer) http.Handler {
	router := mux.NewRouter()

	// API-эндпоинт для вычислений
	router.HandleFunc("/api/calculate", handlers.CalculateHandler).Methods(http.MethodPost)

	// Статические файлы
	static := handlers.NewStaticHandler(staticDir, indexFile)
	router.HandleFunc("/", static.IndexHandler).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/{path:.*}", static.FileHandler).Methods(http.MethodGet, http.MethodHead)

	var h http.Handler = router
	h = RecoveryMiddleware(h)
	h = AccessLog(accessLog)(h)
	h = RequestIDMiddleware(h)
	h = CORS()(h)
	return h
}
