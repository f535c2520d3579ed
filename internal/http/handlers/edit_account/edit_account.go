package editaccount

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"cuentas/internal/core/domain/account"
	c "cuentas/internal/core/domain/common"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/services"
	editaccount "cuentas/internal/core/services/edit_account"
	"cuentas/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	service services.Service[editaccount.Input, editaccount.Result]
}

func New(
	service services.Service[editaccount.Input, editaccount.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Name   string
	Email  string
	Phone  string
	RoleID int64
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Email, validation.Required, validation.Length(3, 256)),
		validation.Field(&i.Phone, validation.Length(0, 64)),
		validation.Field(&i.RoleID, validation.Required),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid account id", http.StatusBadRequest)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	roleID, _ := strconv.ParseInt(r.FormValue("role_id"), 10, 64)
	input := Input{
		Name:   r.FormValue("name"),
		Email:  r.FormValue("email"),
		Phone:  r.FormValue("phone"),
		RoleID: roleID,
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := editaccount.Input{
		ID:     account.ID(accountID),
		Name:   input.Name,
		Email:  c.NewEmail(input.Email),
		Phone:  input.Phone,
		RoleID: account.RoleID(input.RoleID),
	}

	photo, header, err := r.FormFile("photo")
	if err == nil {
		defer photo.Close()
		serviceInput.Photo = c.NewOptional[io.Reader](photo, true)
		serviceInput.PhotoName = header.Filename
	} else if !errors.Is(err, http.ErrMissingFile) {
		response.RenderError(rw, "invalid photo", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrEmailAlreadyExists):
			response.RenderError(rw, err.Error(), http.StatusConflict)
		case errors.Is(err, account.ErrAccountDoesNotExist):
			response.RenderNotFound(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, response.AccountFromDomain(result.Account), http.StatusOK)
}
