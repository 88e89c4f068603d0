package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/GGmuzem/web-calculator/internal/handlers"
	"github.com/GGmuzem/web-calculator/pkg/models"
	"github.com/google/uuid"
	ghandlers "github.com/gorilla/handlers"
)

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// CORS разрешает запросы с любого источника
func CORS() func(http.Handler) http.Handler {
	return ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		ghandlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
		ghandlers.ExposedHeaders([]string{RequestIDHeader}),
	)
}

// RequestIDMiddleware присваивает запросу идентификатор, если клиент его не передал
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(SetRequestID(r.Context(), id)))
	})
}

// AccessLog пишет по одной строке на запрос в формате стандартного логгера
func AccessLog(out io.Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return ghandlers.CustomLoggingHandler(out, next, writeAccessLog)
	}
}

func writeAccessLog(w io.Writer, params ghandlers.LogFormatterParams) {
	fmt.Fprintf(w, "%s [%s] %s %s %d %d %v\n",
		params.TimeStamp.Format("2006/01/02 15:04:05"),
		params.Request.Header.Get(RequestIDHeader),
		params.Request.Method,
		params.URL.RequestURI(),
		params.StatusCode,
		params.Size,
		time.Since(params.TimeStamp),
	)
}

// RecoveryMiddleware превращает панику при обработке запроса в ответ 500 с описанием
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			id, _ := GetRequestID(r.Context())
			log.Printf("RecoveryMiddleware: паника при обработке %s %s [%s]: %v", r.Method, r.URL.Path, id, rec)
			handlers.WriteJSON(w, http.StatusInternalServerError, models.ErrorResponse(fmt.Sprint(rec)))
		}()

		next.ServeHTTP(w, r)
	})
}
