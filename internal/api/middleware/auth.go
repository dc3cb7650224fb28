package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

type contextKey string

const callerIDKey contextKey = "callerID"

// HeaderUserID заголовок с идентификатором пользователя платформы.
// Его проставляет чат-фронтенд, который уже аутентифицировал пользователя.
const HeaderUserID = "X-User-ID"

// Auth требует корректный X-User-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}

		callerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || callerID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), callerIDKey, callerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CallerID извлекает идентификатор вызывающего из контекста запроса.
// Возвращает 0, если запрос не прошёл через Auth.
func CallerID(r *http.Request) int64 {
	id, _ := r.Context().Value(callerIDKey).(int64)
	return id
}
