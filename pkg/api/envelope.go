// api описывает wire-контракт между мобильным клиентом и auth-сервером.
//
// Все эндпоинты отвечают единым конвертом {success, message, data}:
//   - success=false гарантирует отсутствие data;
//   - клиент обязан ветвиться по success, а не только по HTTP-статусу.
package api

import (
	"encoding/json"
	"fmt"
)

// Envelope — единый формат ответа всех эндпоинтов.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// OK собирает успешный конверт без полезной нагрузки.
func OK(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// OKWithData собирает успешный конверт с сериализованной полезной нагрузкой.
func OKWithData(message string, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("api.OKWithData: %w", err)
	}

	return Envelope{Success: true, Message: message, Data: raw}, nil
}

// Fail собирает конверт ошибки. Data всегда отсутствует.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// DecodeData разворачивает полезную нагрузку конверта в v.
// Для конверта без data возвращает ошибку — вызывающий обязан
// сначала проверить success.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("api.DecodeData: envelope has no data")
	}

	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("api.DecodeData: %w", err)
	}

	return nil
}
