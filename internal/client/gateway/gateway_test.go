package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-mobile-auth/pkg/api"
)

// memTokens — хранилище токена в памяти для тестов.
type memTokens struct {
	token  string
	getErr error
}

func (m *memTokens) Get(_ context.Context) (string, error) {
	return m.token, m.getErr
}

func (m *memTokens) Save(_ context.Context, token string) error {
	m.token = token
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSignup_PersistsToken(t *testing.T) {
	payload := api.AuthPayload{
		Token: "issued-token",
		User:  api.UserPayload{ID: "u-1", Name: "alice", Email: "alice@test.io"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/signup", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice", req.Name)
		require.Equal(t, "alice@test.io", req.Email)

		env, err := api.OKWithData("User registered successfully", payload)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(env))
	}))
	defer srv.Close()

	tokens := &memTokens{}
	g := New(srv.URL+"/api", tokens, discardLogger(), nil)

	res, err := g.Signup(context.Background(), "  alice  ", " alice@test.io ", "secret1")
	require.NoError(t, err)
	require.NoError(t, res.SaveErr)
	require.Equal(t, payload, res.Auth)
	require.Equal(t, "issued-token", tokens.token)
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.OK("Server is running")))
	}))
	defer srv.Close()

	g := New(srv.URL, &memTokens{token: "stored-token"}, discardLogger(), nil)

	_, err := g.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer stored-token", gotAuth)
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.OK("Server is running")))
	}))
	defer srv.Close()

	g := New(srv.URL, &memTokens{}, discardLogger(), nil)

	_, err := g.Health(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestDo_TokenReadFailureProceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.OK("Server is running")))
	}))
	defer srv.Close()

	g := New(srv.URL, &memTokens{getErr: errors.New("db locked")}, discardLogger(), nil)

	env, err := g.Health(context.Background())
	require.NoError(t, err)
	require.True(t, env.Success)
}

func TestDo_NoBodyOnGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Empty(t, body)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.OK("Server is running")))
	}))
	defer srv.Close()

	g := New(srv.URL, &memTokens{}, discardLogger(), nil)

	_, err := g.Do(context.Background(), http.MethodGet, "/health", map[string]string{"ignored": "x"})
	require.NoError(t, err)
}

func TestDo_NonOKStatusReturnsRequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		require.NoError(t, json.NewEncoder(w).Encode(api.Fail("User already exists with this email")))
	}))
	defer srv.Close()

	g := New(srv.URL, &memTokens{}, discardLogger(), nil)

	_, err := g.Signup(context.Background(), "bob", "bob@test.io", "secret1")
	require.Error(t, err)

	var reqErr *RequestFailedError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
	require.Equal(t, "User already exists with this email", reqErr.Message)
}

func TestDo_MalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	g := New(srv.URL, &memTokens{}, discardLogger(), nil)

	_, err := g.Health(context.Background())
	require.Error(t, err)
}

func TestLogin_PassesEnvelopeThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotImplemented)
		require.NoError(t, json.NewEncoder(w).Encode(api.Fail("Not implemented")))
	}))
	defer srv.Close()

	g := New(srv.URL, &memTokens{}, discardLogger(), nil)

	_, err := g.Login(context.Background(), "bob@test.io", "secret1")

	var reqErr *RequestFailedError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusNotImplemented, reqErr.StatusCode)
	require.Equal(t, "Not implemented", reqErr.Message)
}
