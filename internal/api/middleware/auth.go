package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
)

// OwnerIDHeader заголовок с идентификатором владельца площадки
const OwnerIDHeader = "X-Owner-ID"

const (
	msgMissingOwnerID = "отсутствует заголовок X-Owner-ID"
	msgInvalidOwnerID = "некорректный X-Owner-ID"
)

type contextKey string

const ownerIDKey contextKey = "owner_id"

// Auth извлекает X-Owner-ID и кладет его в контекст запроса
// Проверка учетных данных выполняется за пределами сервиса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(OwnerIDHeader))
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingOwnerID)
			return
		}

		ownerID, err := uuid.Parse(raw)
		if err != nil || ownerID == uuid.Nil {
			handlers.RespondUnauthorized(w, msgInvalidOwnerID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithOwnerID(r.Context(), ownerID)))
	})
}

// WithOwnerID возвращает контекст с идентификатором владельца
func WithOwnerID(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}

// GetOwnerID достает идентификатор владельца из контекста
func GetOwnerID(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(ownerIDKey).(uuid.UUID)
	return ownerID, ok
}
