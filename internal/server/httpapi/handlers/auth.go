package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-mobile-auth/internal/server/httpapi/apierrors"
	"github.com/pribylovaa/go-mobile-auth/internal/server/service"
	"github.com/pribylovaa/go-mobile-auth/pkg/api"
)

// Signup — POST /auth/signup: регистрация пользователя и выпуск токена.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var in api.SignupRequest
	if err := decodeStrict(r, &in); err != nil {
		// Битое или пустое тело неотличимо для клиента от незаполненных полей.
		apierrors.WriteError(w, r, service.ErrMissingFields, h.detail)
		return
	}

	token, user, err := h.svc.RegisterUser(r.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err, h.detail)
		return
	}

	env, err := api.OKWithData("User registered successfully", api.AuthPayload{
		Token: token,
		User: api.UserPayload{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
	if err != nil {
		apierrors.WriteError(w, r, err, h.detail)
		return
	}

	writeJSON(w, http.StatusCreated, env)
}

// Login — POST /auth/login: заглушка, вход не реализован.
// Контракт фиксирует только 501 {success:false, message:"Not implemented"}.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, api.Fail("Not implemented"))
}
