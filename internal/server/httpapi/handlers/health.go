package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-mobile-auth/pkg/api"
)

// Health — GET /health: проверка живости в формате общего конверта.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.OK("Server is running"))
}
