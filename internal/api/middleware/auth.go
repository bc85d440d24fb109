package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/user"
)

// UserIDHeader заголовок с ID аутентифицированного пользователя
const UserIDHeader = "X-User-ID"

type userKey struct{}

// Auth загружает пользователя по X-User-ID и кладет его в контекст
// Отсутствующий, некорректный или неизвестный ID - 401
func Auth(users UserProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, UserIDHeader)
				handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID < 1 {
				logger.Warn("%s %s - Invalid %s header: %q", r.Method, r.URL.Path, UserIDHeader, raw)
				handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					logger.Warn("%s %s - Unknown user: user_id=%d", r.Method, r.URL.Path, userID)
					handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
					return
				}
				logger.Error("%s %s - Failed to load user: user_id=%d, error=%v", r.Method, r.URL.Path, userID, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser кладет пользователя в контекст
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUser достает аутентифицированного пользователя из контекста
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey{}).(*domain.User)
	return user, ok && user != nil
}
