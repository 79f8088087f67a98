// apierrors стандартизирует ответы об ошибках HTTP-слоя auth-сервера.
// На вход принимает ошибку сервисного слоя, на выход даёт:
//   - корректный HTTP-статус;
//   - конверт {success:false, message} без поля data.
//
// Сообщения валидационных ошибок фиксированы wire-контрактом;
// детали неожиданных ошибок отдаются наружу только вне production.
package apierrors

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/go-mobile-auth/internal/server/service"
	"github.com/pribylovaa/go-mobile-auth/pkg/api"
	logctx "github.com/pribylovaa/go-mobile-auth/pkg/log"
)

// Сообщение 500-й ошибки для production.
const genericServerError = "Something went wrong!"

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и конверт.
//
// Поведение:
//   - err == nil — программная ошибка вызова: возвращаем 500,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - сентинелы service.* маппятся на 400 с фиксированным сообщением;
//   - прочее — 500; detail=true добавляет текст ошибки (не для production).
func ToHTTP(err error, detail bool) (int, api.Envelope) {
	if err == nil {
		return http.StatusInternalServerError, api.Fail(genericServerError)
	}

	switch {
	case errors.Is(err, service.ErrMissingFields):
		return http.StatusBadRequest, api.Fail("Name, email and password are required")
	case errors.Is(err, service.ErrWeakPassword):
		return http.StatusBadRequest, api.Fail("Password is too short")
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest, api.Fail("User already exists with this email")
	}

	if detail {
		return http.StatusInternalServerError, api.Fail(err.Error())
	}

	return http.StatusInternalServerError, api.Fail(genericServerError)
}

// WriteError — хелпер для HTTP-хендлеров: маппит ошибку, логирует
// неожиданные (5xx) до записи ответа и пишет конверт.
func WriteError(w http.ResponseWriter, r *http.Request, err error, detail bool) {
	status, resp := ToHTTP(err, detail)

	if status >= http.StatusInternalServerError {
		attrs := []slog.Attr{slog.String("path", r.URL.Path)}
		if err != nil {
			attrs = append(attrs, slog.String("err", err.Error()))
		}
		logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "request_failed", attrs...)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
