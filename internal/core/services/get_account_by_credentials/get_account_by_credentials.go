package getaccountbycredentials

import (
	"context"
	"errors"

	"cuentas/internal/core/domain/account"
	c "cuentas/internal/core/domain/common"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/services"
)

type Input struct {
	Email    c.Email
	Password account.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "get-account-by-credentials::" + string(i.Email)
}

type Result struct {
	Account account.Account
}

type service struct {
	log               logging.Logger
	accountRepository account.AccountRepository
	passwordHasher    account.PasswordHasher
}

func New(
	log logging.Logger,
	accountRepository account.AccountRepository,
	passwordHasher account.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		passwordHasher:    passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	digest, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	a, err := s.accountRepository.GetByEmailAndDigest(ctx, input.Email, digest)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		// No match is the normal outcome for wrong credentials.
		return result, account.ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account by credentials.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	return Result{Account: a}, nil
}
