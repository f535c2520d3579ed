package getaccount

import (
	"errors"
	"net/http"
	"strconv"

	"cuentas/internal/core/domain/account"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/services"
	getaccountbyid "cuentas/internal/core/services/get_account_by_id"
	"cuentas/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[getaccountbyid.Input, getaccountbyid.Result]
}

func New(
	service services.Service[getaccountbyid.Input, getaccountbyid.Result],
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

	result, err := h.service.Run(r.Context(), getaccountbyid.Input{ID: account.ID(accountID)})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountDoesNotExist):
			response.RenderNotFound(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, response.AccountFromDomain(result.Account), http.StatusOK)
}
