package changepassword

import (
	"context"
	"errors"

	"cuentas/internal/core/domain/account"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/services"
)

type Input struct {
	AccountID       account.ID
	CurrentPassword account.RawPassword
	NewPassword     account.RawPassword
}

type Result struct{}

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
	a, err := s.accountRepository.GetByID(ctx, input.AccountID, false)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(ctx, "Account not found for password change.", logging.Entry("accountID", input.AccountID))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account for password change.",
			logging.Entry("accountID", input.AccountID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !s.passwordHasher.ValidatePassword(input.CurrentPassword, a.PasswordDigest) {
		return result, account.ErrInvalidCredentials
	}

	newDigest, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}
	if err := s.accountRepository.SetPasswordDigest(ctx, a.ID, newDigest); err != nil {
		s.log.Error(
			ctx,
			"Could not set new password digest.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Account password has been changed.", logging.Entry("accountID", a.ID))
	return Result{}, nil
}
