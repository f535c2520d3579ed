package listaccounts

import (
	"net/http"

	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/services"
	listaccounts "cuentas/internal/core/services/list_accounts"
	"cuentas/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listaccounts.Input, listaccounts.Result]
}

func New(
	service services.Service[listaccounts.Input, listaccounts.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listaccounts.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, response.AccountsFromDomain(result.Accounts), http.StatusOK)
}
