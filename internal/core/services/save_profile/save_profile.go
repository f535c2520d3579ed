package saveprofile

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
	AccountID account.ID
	Email     c.Email
	Phone     string
}

type Result struct {
	Account account.Account
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
	a, err := s.accountRepository.GetByID(ctx, input.AccountID, false)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(ctx, "Account not found for profile update.", logging.Entry("accountID", input.AccountID))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account for profile update.",
			logging.Entry("accountID", input.AccountID),
			logging.Entry("err", err),
		)
		return result, err
	}

	updated, err := s.accountRepository.Update(ctx, account.UpdateAccountInput{
		ID:            a.ID,
		DoEmailUpdate: true,
		Email:         input.Email,
		DoPhoneUpdate: true,
		Phone:         input.Phone,
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update account profile.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Account profile has been updated.", logging.Entry("accountID", a.ID))
	return Result{Account: updated}, nil
}
