package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором пользователя
// Проставляется API-gateway после аутентификации
const HeaderUserID = "X-User-ID"

type userIDKey struct{}

// Auth проверяет наличие корректного X-User-ID в запросе и кладет
// его в контекст. Сама аутентификация выполняется выше по цепочке (gateway)
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
