package createaccount

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"cuentas/internal/core/domain/account"
	c "cuentas/internal/core/domain/common"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/services"
	createaccount "cuentas/internal/core/services/create_account"
	"cuentas/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	service services.Service[createaccount.Input, createaccount.Result]
}

func New(
	service services.Service[createaccount.Input, createaccount.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Name        string
	Email       string
	Phone       string
	RoleID      int64
	TemplateURL string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Email, validation.Required, validation.Length(3, 256)),
		validation.Field(&i.Phone, validation.Length(0, 64)),
		validation.Field(&i.RoleID, validation.Required),
		validation.Field(&i.TemplateURL, validation.Length(0, 2048)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	roleID, _ := strconv.ParseInt(r.FormValue("role_id"), 10, 64)
	input := Input{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		RoleID:      roleID,
		TemplateURL: r.FormValue("template_url"),
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := createaccount.Input{
		Name:        input.Name,
		Email:       c.NewEmail(input.Email),
		Phone:       input.Phone,
		RoleID:      account.RoleID(input.RoleID),
		TemplateURL: c.NewOptional(input.TemplateURL, input.TemplateURL != ""),
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
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, response.AccountFromDomain(result.Account), http.StatusCreated)
}
