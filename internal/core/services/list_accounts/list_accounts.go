package listaccounts

import (
	"context"

	"cuentas/internal/core/domain/account"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/services"
)

type Input struct{}

type Result struct {
	Accounts []account.Account
}

type service struct {
	log               logging.Logger
	accountRepository account.AccountRepository
}

func New(
	log logging.Logger,
	accountRepository account.AccountRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	accounts, err := s.accountRepository.List(ctx, true)
	if err != nil {
		s.log.Error(ctx, "Could not list accounts.", logging.Entry("err", err))
		return result, err
	}
	return Result{Accounts: accounts}, nil
}
