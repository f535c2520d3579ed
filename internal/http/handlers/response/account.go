package response

import (
	"cuentas/internal/core/domain/account"
)

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Account struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photo_url"`
	RoleID   int64  `json:"role_id"`
	Role     *Role  `json:"role,omitempty"`
}

func AccountFromDomain(a account.Account) Account {
	resp := Account{
		ID:       int64(a.ID),
		Email:    string(a.Email),
		Name:     a.Name,
		Phone:    a.Phone,
		PhotoURL: a.PhotoURL,
		RoleID:   int64(a.RoleID),
	}
	if a.Role.IsPresent {
		resp.Role = &Role{ID: int64(a.Role.Value.ID), Name: a.Role.Value.Name}
	}
	return resp
}

func AccountsFromDomain(accounts []account.Account) []Account {
	resp := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, AccountFromDomain(a))
	}
	return resp
}
