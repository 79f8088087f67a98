// Входные/выходные модели auth-эндпоинтов.
package api

// SignupRequest — тело POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest — тело POST /auth/login (серверная часть — заглушка).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPayload — публичное представление пользователя.
// Секрет учётных данных сюда не попадает никогда.
type UserPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthPayload — data успешной регистрации.
type AuthPayload struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}
