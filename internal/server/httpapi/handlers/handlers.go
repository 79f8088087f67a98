package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-mobile-auth/internal/server/service"
)

// Handlers агрегирует зависимости HTTP-слоя.
// detail управляет выдачей текста неожиданных ошибок (true вне production).
type Handlers struct {
	svc    *service.Service
	detail bool
}

func New(svc *service.Service, detail bool) *Handlers {
	return &Handlers{svc: svc, detail: detail}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
