package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avdeev-lv/SM-ReservationService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserIDHeader заголовок с идентификатором пользователя
// Его проставляет API gateway после проверки сессии
const UserIDHeader = "X-User-ID"

// Auth требует валидный заголовок X-User-ID и кладет ID пользователя в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, проставленный middleware Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
