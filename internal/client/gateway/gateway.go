// gateway — клиентский шлюз к auth-серверу: единая точка, где
// формируются запросы, подставляется bearer-токен и разбирается
// конверт ответа.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pribylovaa/go-mobile-auth/pkg/api"
)

// TokenStore — локальное хранилище токена доступа.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}

const defaultTimeout = 15 * time.Second

// Gateway инкапсулирует HTTP-доступ к API сервера.
type Gateway struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenStore
	log     *slog.Logger
}

// New создаёт шлюз поверх готового базового адреса
// (схема+хост+порт+префикс, без завершающего слэша).
// httpc == nil означает клиент по умолчанию с таймаутом defaultTimeout.
func New(baseURL string, tokens TokenStore, log *slog.Logger, httpc *http.Client) *Gateway {
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		tokens:  tokens,
		log:     log,
	}
}

// SignupResult — результат регистрации. SaveErr не обнуляет успех:
// аккаунт уже создан на сервере, даже если токен не удалось
// сохранить локально.
type SignupResult struct {
	Auth    api.AuthPayload
	SaveErr error
}

// Signup регистрирует пользователя и сохраняет выданный токен.
func (g *Gateway) Signup(ctx context.Context, name, email, password string) (*SignupResult, error) {
	const op = "gateway.Signup"

	req := api.SignupRequest{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
	}

	env, err := g.Do(ctx, http.MethodPost, "/auth/signup", req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var payload api.AuthPayload
	if err := env.DecodeData(&payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &SignupResult{Auth: payload}
	if payload.Token != "" {
		res.SaveErr = g.tokens.Save(ctx, payload.Token)
	}

	return res, nil
}

// Login — сервер пока отвечает заглушкой 501; метод оставлен
// для симметрии контракта.
func (g *Gateway) Login(ctx context.Context, email, password string) (*api.Envelope, error) {
	const op = "gateway.Login"

	req := api.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	}

	env, err := g.Do(ctx, http.MethodPost, "/auth/login", req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return env, nil
}

// Health проверяет доступность сервера.
func (g *Gateway) Health(ctx context.Context) (*api.Envelope, error) {
	const op = "gateway.Health"

	env, err := g.Do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return env, nil
}

// Do выполняет запрос к path относительно базового адреса.
// Тело сериализуется только для методов с полезной нагрузкой.
// Токен подставляется, если он есть в хранилище; ошибка чтения
// токена не блокирует запрос — он уходит неаутентифицированным.
func (g *Gateway) Do(ctx context.Context, method, path string, body any) (*api.Envelope, error) {
	const op = "gateway.Do"

	var reader io.Reader
	if body != nil && hasBody(method) {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal body: %w", op, err)
		}

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if token, err := g.tokens.Get(ctx); err != nil {
		g.log.Warn("failed to read stored token, proceeding unauthenticated",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	var env api.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%s: decode envelope (status %d): %w", op, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestFailedError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
		}
	}

	return &env, nil
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}
