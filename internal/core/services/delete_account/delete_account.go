package deleteaccount

import (
	"context"
	"errors"

	"cuentas/internal/core/domain/account"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/domain/storage"
	"cuentas/internal/core/services"
)

type Input struct {
	ID account.ID
}

type Result struct{}

type service struct {
	log               logging.Logger
	accountRepository account.AccountRepository
	objectStorage     storage.ObjectStorage
}

func New(
	log logging.Logger,
	accountRepository account.AccountRepository,
	objectStorage storage.ObjectStorage,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if objectStorage == nil {
		panic(e.NewNilArgumentError("objectStorage"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		objectStorage:     objectStorage,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByID(ctx, input.ID, false)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(ctx, "Account not found for deletion.", logging.Entry("accountID", input.ID))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account for deletion.",
			logging.Entry("accountID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := s.accountRepository.Delete(ctx, input.ID); err != nil {
		s.log.Error(
			ctx,
			"Could not delete account.",
			logging.Entry("accountID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	// The photo blob removal is best-effort: the account row is already
	// gone, so a storage failure must not fail the operation.
	if a.HasPhoto() {
		if err := s.objectStorage.Delete(ctx, account.PhotoFolder, a.PhotoName); err != nil {
			s.log.Warning(
				ctx,
				"Could not delete account photo from object storage.",
				logging.Entry("accountID", input.ID),
				logging.Entry("photoName", a.PhotoName),
				logging.Entry("err", err),
			)
		}
	}

	s.log.Info(ctx, "Account has been deleted.", logging.Entry("accountID", input.ID))
	return Result{}, nil
}
