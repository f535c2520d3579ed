package deleteaccount

import (
	"errors"
	"net/http"
	"strconv"

	"cuentas/internal/core/domain/account"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/services"
	deleteaccount "cuentas/internal/core/services/delete_account"
	"cuentas/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deleteaccount.Input, deleteaccount.Result]
}

func New(
	service services.Service[deleteaccount.Input, deleteaccount.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid account id", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deleteaccount.Input{ID: account.ID(accountID)})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountDoesNotExist):
			response.RenderNotFound(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, struct{}{}, http.StatusOK)
}
