package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/go-mobile-auth/internal/server/httpapi/apierrors"
	logctx "github.com/pribylovaa/go-mobile-auth/pkg/log"
)

// Recover перехватывает panic и конвертирует в 500 с конвертом ошибки.
// Детали паники не утекают на клиент независимо от окружения —
// никакой ответ не должен оказаться не-JSON.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logctx.From(r.Context()).
						LogAttrs(r.Context(), slog.LevelError, "panic",
							slog.String("path", r.URL.Path),
							slog.Any("reason", rec),
						)
					apierrors.WriteError(w, r, errors.New("internal"), false)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
