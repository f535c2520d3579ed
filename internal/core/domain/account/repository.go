package account

import (
	"context"
	c "cuentas/internal/core/domain/common"
	"time"
)

type CreateAccountInput struct {
	Email          c.Email
	PasswordDigest PasswordDigest
	Name           string
	Phone          string
	PhotoName      string
	PhotoURL       string
	RoleID         RoleID
	CreatedAt      time.Time
}

type UpdateAccountInput struct {
	ID                ID
	DoNameUpdate      bool
	Name              string
	DoEmailUpdate     bool
	Email             c.Email
	DoPhoneUpdate     bool
	Phone             string
	DoRoleUpdate      bool
	RoleID            RoleID
	DoPhotoNameUpdate bool
	PhotoName         string
	DoPhotoURLUpdate  bool
	PhotoURL          string
}

type AccountRepository interface {
	Create(ctx context.Context, input CreateAccountInput) (Account, error)
	GetByID(ctx context.Context, id ID, includeRole bool) (Account, error)
	GetByEmail(ctx context.Context, email c.Email, includeRole bool) (Account, error)
	GetByEmailAndDigest(ctx context.Context, email c.Email, digest PasswordDigest) (Account, error)
	List(ctx context.Context, includeRole bool) ([]Account, error)
	Update(ctx context.Context, input UpdateAccountInput) (Account, error)
	SetPasswordDigest(ctx context.Context, id ID, digest PasswordDigest) error
	Delete(ctx context.Context, id ID) error
}
