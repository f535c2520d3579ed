package account

import (
	c "cuentas/internal/core/domain/common"
	e "cuentas/internal/core/domain/errors"
	"fmt"
	"time"
)

// PhotoFolder is the object storage folder that holds every account photo.
const PhotoFolder = "carpeta_usuario"

// EmailToken and PasswordToken are the placeholders substituted into email
// template URLs before the template is fetched.
const (
	EmailToken    = "[correo]"
	PasswordToken = "[clave]"
)

type ID int64

type RoleID int64

type PasswordDigest string

func (p PasswordDigest) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Role struct {
	ID   RoleID
	Name string
}

type Account struct {
	ID             ID
	Email          c.Email
	PasswordDigest PasswordDigest
	Name           string
	Phone          string
	PhotoName      string
	PhotoURL       string
	RoleID         RoleID
	Role           c.Optional[Role]
	CreatedAt      time.Time
}

func (a *Account) Validate() error {
	if a.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for account %d", a.ID))
	}
	if a.PasswordDigest == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password digest is not set for account %d", a.ID))
	}
	return nil
}

func (a *Account) HasPhoto() bool {
	return a.PhotoName != ""
}
