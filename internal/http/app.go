package http

import (
	"net/http"
	"time"

	changepassword "cuentas/internal/core/services/change_password"
	createaccount "cuentas/internal/core/services/create_account"
	deleteaccount "cuentas/internal/core/services/delete_account"
	editaccount "cuentas/internal/core/services/edit_account"
	getaccountbycredentials "cuentas/internal/core/services/get_account_by_credentials"
	getaccountbyid "cuentas/internal/core/services/get_account_by_id"
	listaccounts "cuentas/internal/core/services/list_accounts"
	resetpassword "cuentas/internal/core/services/reset_password"
	saveprofile "cuentas/internal/core/services/save_profile"

	"cuentas/internal/core/services"
	handlerChangePassword "cuentas/internal/http/handlers/change_password"
	handlerCreateAccount "cuentas/internal/http/handlers/create_account"
	handlerDeleteAccount "cuentas/internal/http/handlers/delete_account"
	handlerEditAccount "cuentas/internal/http/handlers/edit_account"
	handlerGetAccount "cuentas/internal/http/handlers/get_account"
	handlerListAccounts "cuentas/internal/http/handlers/list_accounts"
	handlerLogIn "cuentas/internal/http/handlers/log_in"
	handlerResetPassword "cuentas/internal/http/handlers/reset_password"
	handlerSaveProfile "cuentas/internal/http/handlers/save_profile"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Services struct {
	CreateAccount           services.Service[createaccount.Input, createaccount.Result]
	EditAccount             services.Service[editaccount.Input, editaccount.Result]
	DeleteAccount           services.Service[deleteaccount.Input, deleteaccount.Result]
	ChangePassword          services.Service[changepassword.Input, changepassword.Result]
	ResetPassword           services.Service[resetpassword.Input, resetpassword.Result]
	SaveProfile             services.Service[saveprofile.Input, saveprofile.Result]
	GetAccountByCredentials services.Service[getaccountbycredentials.Input, getaccountbycredentials.Result]
	GetAccountByID          services.Service[getaccountbyid.Input, getaccountbyid.Result]
	ListAccounts            services.Service[listaccounts.Input, listaccounts.Result]
}

func NewRouter(s Services) http.Handler {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/log-in", handlerLogIn.New(s.GetAccountByCredentials).ServeHTTP)
		r.Post("/auth/reset-password", handlerResetPassword.New(s.ResetPassword).ServeHTTP)

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", handlerListAccounts.New(s.ListAccounts).ServeHTTP)
			r.Post("/", handlerCreateAccount.New(s.CreateAccount).ServeHTTP)
			r.Route("/{accountID}", func(r chi.Router) {
				r.Get("/", handlerGetAccount.New(s.GetAccountByID).ServeHTTP)
				r.Put("/", handlerEditAccount.New(s.EditAccount).ServeHTTP)
				r.Delete("/", handlerDeleteAccount.New(s.DeleteAccount).ServeHTTP)
				r.Post("/password", handlerChangePassword.New(s.ChangePassword).ServeHTTP)
				r.Put("/profile", handlerSaveProfile.New(s.SaveProfile).ServeHTTP)
			})
		})
	})

	return router
}

func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
