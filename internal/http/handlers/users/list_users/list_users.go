package listusers

import (
	"accounts/internal/core/services"
	listusers "accounts/internal/core/services/list_users"
	"accounts/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[listusers.Input, listusers.Result]
}

func New(
	service services.Service[listusers.Input, listusers.Result],
) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listusers.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, response.NewUsers(result.Users), http.StatusOK)
}
