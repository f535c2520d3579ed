package editaccount

import (
	"context"
	"errors"
	"io"

	"cuentas/internal/core/domain/account"
	c "cuentas/internal/core/domain/common"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/domain/storage"
	"cuentas/internal/core/services"
)

type Input struct {
	ID        account.ID
	Name      string
	Email     c.Email
	Phone     string
	RoleID    account.RoleID
	Photo     c.Optional[io.Reader]
	PhotoName string
}

type Result struct {
	Account account.Account
}

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
	existing, err := s.accountRepository.GetByEmail(ctx, input.Email, false)
	if err == nil && existing.ID != input.ID {
		s.log.Info(
			ctx,
			"Another account already uses the email.",
			logging.Entry("email", input.Email),
			logging.Entry("accountID", existing.ID),
		)
		return result, account.ErrEmailAlreadyExists
	}
	if err != nil && !errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Error(
			ctx,
			"Could not check account email for uniqueness.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	current, err := s.accountRepository.GetByID(ctx, input.ID, false)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(ctx, "Account not found for edit.", logging.Entry("accountID", input.ID))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account for edit.",
			logging.Entry("accountID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	// An existing photo name stays; the incoming one is adopted only when
	// the account had none.
	photoName := current.PhotoName
	if photoName == "" {
		photoName = input.PhotoName
	}

	update := account.UpdateAccountInput{
		ID:                input.ID,
		DoNameUpdate:      true,
		Name:              input.Name,
		DoEmailUpdate:     true,
		Email:             input.Email,
		DoPhoneUpdate:     true,
		Phone:             input.Phone,
		DoRoleUpdate:      true,
		RoleID:            input.RoleID,
		DoPhotoNameUpdate: true,
		PhotoName:         photoName,
	}

	if input.Photo.IsPresent {
		photoURL, err := s.objectStorage.Upload(ctx, input.Photo.Value, account.PhotoFolder, photoName)
		if err != nil {
			s.log.Error(
				ctx,
				"Could not upload account photo.",
				logging.Entry("accountID", input.ID),
				logging.Entry("photoName", photoName),
				logging.Entry("err", err),
			)
			return result, err
		}
		update.DoPhotoURLUpdate = true
		update.PhotoURL = photoURL
	}

	updated, err := s.accountRepository.Update(ctx, update)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update account.",
			logging.Entry("accountID", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Account has been updated.", logging.Entry("accountID", updated.ID))

	withRole, err := s.accountRepository.GetByID(ctx, updated.ID, true)
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not re-fetch updated account with role.",
			logging.Entry("accountID", updated.ID),
			logging.Entry("err", err),
		)
		return Result{Account: updated}, nil
	}
	return Result{Account: withRole}, nil
}
