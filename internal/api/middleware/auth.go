package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDHeader заголовок, через который шлюз передаёт ID пользователя
const UserIDHeader = "X-User-ID"

// Auth middleware проверяет наличие заголовка X-User-ID и кладёт
// ID пользователя в контекст запроса
// Аутентификацию выполняет внешний шлюз; сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(UserIDHeader)
		if rawID == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
