package gateway

import "fmt"

// RequestFailedError — ответ сервера с кодом вне 2xx.
// Message берётся из конверта ответа, чтобы вызывающий мог
// показать пользователю серверную формулировку.
type RequestFailedError struct {
	StatusCode int
	Message    string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}
