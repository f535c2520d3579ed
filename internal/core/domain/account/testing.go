package account

import (
	"context"
	c "cuentas/internal/core/domain/common"
	"fmt"
	"sync"
)

type FakeAccountRepository struct {
	Accounts []Account
	Roles    []Role

	CreateError      bool
	UpdateError      bool
	DeleteError      bool
	SetPasswordError bool
	GetError         bool

	lock sync.Mutex
}

func NewFakeAccountRepository() *FakeAccountRepository {
	return &FakeAccountRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeAccountRepository) Create(ctx context.Context, input CreateAccountInput) (a Account, err error) {
	if r.CreateError {
		return a, fmt.Errorf("could not create account %v", input.Email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Accounts {
		if existing.Email == input.Email {
			return a, ErrEmailAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	a = Account{
		ID:             maxID + 1,
		Email:          input.Email,
		PasswordDigest: input.PasswordDigest,
		Name:           input.Name,
		Phone:          input.Phone,
		PhotoName:      input.PhotoName,
		PhotoURL:       input.PhotoURL,
		RoleID:         input.RoleID,
		CreatedAt:      input.CreatedAt,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}

func (r *FakeAccountRepository) GetByID(ctx context.Context, id ID, includeRole bool) (a Account, err error) {
	if r.GetError {
		return a, fmt.Errorf("could not get account %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Accounts {
		if existing.ID == id {
			return r.withRole(existing, includeRole), nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) GetByEmail(ctx context.Context, email c.Email, includeRole bool) (a Account, err error) {
	if r.GetError {
		return a, fmt.Errorf("could not get account %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Accounts {
		if existing.Email == email {
			return r.withRole(existing, includeRole), nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) GetByEmailAndDigest(
	ctx context.Context,
	email c.Email,
	digest PasswordDigest,
) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Accounts {
		if existing.Email == email && existing.PasswordDigest == digest {
			return existing, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) List(ctx context.Context, includeRole bool) ([]Account, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	accounts := make([]Account, 0, len(r.Accounts))
	for _, existing := range r.Accounts {
		accounts = append(accounts, r.withRole(existing, includeRole))
	}
	return accounts, nil
}

func (r *FakeAccountRepository) Update(ctx context.Context, input UpdateAccountInput) (a Account, err error) {
	if r.UpdateError {
		return a, fmt.Errorf("could not update account %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Accounts {
		if existing.ID != input.ID {
			continue
		}
		if input.DoNameUpdate {
			r.Accounts[ix].Name = input.Name
		}
		if input.DoEmailUpdate {
			r.Accounts[ix].Email = input.Email
		}
		if input.DoPhoneUpdate {
			r.Accounts[ix].Phone = input.Phone
		}
		if input.DoRoleUpdate {
			r.Accounts[ix].RoleID = input.RoleID
		}
		if input.DoPhotoNameUpdate {
			r.Accounts[ix].PhotoName = input.PhotoName
		}
		if input.DoPhotoURLUpdate {
			r.Accounts[ix].PhotoURL = input.PhotoURL
		}
		return r.Accounts[ix], nil
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) SetPasswordDigest(ctx context.Context, id ID, digest PasswordDigest) error {
	if r.SetPasswordError {
		return fmt.Errorf("could not set password digest for account %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Accounts {
		if existing.ID == id {
			r.Accounts[ix].PasswordDigest = digest
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError {
		return fmt.Errorf("could not delete account %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Accounts {
		if existing.ID == id {
			r.Accounts = append(r.Accounts[:ix], r.Accounts[ix+1:]...)
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) withRole(a Account, includeRole bool) Account {
	if !includeRole {
		return a
	}
	for _, role := range r.Roles {
		if role.ID == a.RoleID {
			a.Role = c.NewOptional(role, true)
			return a
		}
	}
	return a
}

type FakePasswordHasher struct {
	ReturnError bool
}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordDigest, error) {
	if h.ReturnError {
		return "", fmt.Errorf("could not hash password")
	}
	return PasswordDigest("digest::" + string(password)), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, digest PasswordDigest) bool {
	actual, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actual == digest
}

type FakePasswordGenerator struct {
	Password RawPassword
}

func NewFakePasswordGenerator(password string) *FakePasswordGenerator {
	return &FakePasswordGenerator{Password: RawPassword(password)}
}

func (g *FakePasswordGenerator) GeneratePassword() RawPassword {
	return g.Password
}
