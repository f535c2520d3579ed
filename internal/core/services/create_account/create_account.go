package createaccount

import (
	"context"
	"errors"
	"io"
	"time"

	"cuentas/internal/core/domain/account"
	c "cuentas/internal/core/domain/common"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/domain/notification"
	"cuentas/internal/core/domain/storage"
	"cuentas/internal/core/domain/template"
	"cuentas/internal/core/services"
)

const SubjectAccountCreated = "Cuenta Creada"

type Input struct {
	Name        string
	Email       c.Email
	Phone       string
	RoleID      account.RoleID
	Photo       c.Optional[io.Reader]
	PhotoName   string
	TemplateURL c.Optional[string]
}

type Result struct {
	Account account.Account
}

type service struct {
	log                logging.Logger
	accountRepository  account.AccountRepository
	passwordGenerator  account.PasswordGenerator
	passwordHasher     account.PasswordHasher
	objectStorage      storage.ObjectStorage
	templateFetcher    template.Fetcher
	notificationSender notification.Sender
	now                func() time.Time
}

func New(
	log logging.Logger,
	accountRepository account.AccountRepository,
	passwordGenerator account.PasswordGenerator,
	passwordHasher account.PasswordHasher,
	objectStorage storage.ObjectStorage,
	templateFetcher template.Fetcher,
	notificationSender notification.Sender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if passwordGenerator == nil {
		panic(e.NewNilArgumentError("passwordGenerator"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if objectStorage == nil {
		panic(e.NewNilArgumentError("objectStorage"))
	}
	if templateFetcher == nil {
		panic(e.NewNilArgumentError("templateFetcher"))
	}
	if notificationSender == nil {
		panic(e.NewNilArgumentError("notificationSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		accountRepository:  accountRepository,
		passwordGenerator:  passwordGenerator,
		passwordHasher:     passwordHasher,
		objectStorage:      objectStorage,
		templateFetcher:    templateFetcher,
		notificationSender: notificationSender,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.accountRepository.GetByEmail(ctx, input.Email, false)
	if err == nil {
		s.log.Info(
			ctx,
			"Account with the email already exists.",
			logging.Entry("email", input.Email),
		)
		return result, account.ErrEmailAlreadyExists
	}
	if !errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Error(
			ctx,
			"Could not check account email for uniqueness.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	rawPassword := s.passwordGenerator.GeneratePassword()
	digest, err := s.passwordHasher.HashPassword(rawPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash generated password.", logging.Entry("err", err))
		return result, err
	}

	photoURL := ""
	if input.Photo.IsPresent {
		photoURL, err = s.objectStorage.Upload(ctx, input.Photo.Value, account.PhotoFolder, input.PhotoName)
		if err != nil {
			s.log.Error(
				ctx,
				"Could not upload account photo.",
				logging.Entry("photoName", input.PhotoName),
				logging.Entry("err", err),
			)
			return result, err
		}
	}

	created, err := s.accountRepository.Create(ctx, account.CreateAccountInput{
		Email:          input.Email,
		PasswordDigest: digest,
		Name:           input.Name,
		Phone:          input.Phone,
		PhotoName:      input.PhotoName,
		PhotoURL:       photoURL,
		RoleID:         input.RoleID,
		CreatedAt:      s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrEmailAlreadyExists) {
		s.log.Info(
			ctx,
			"Account with the email already exists.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new account.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	if input.TemplateURL.IsPresent && input.TemplateURL.Value != "" {
		s.sendWelcomeEmail(ctx, created, rawPassword, input.TemplateURL.Value)
	}

	s.log.Info(ctx, "New account has been created.", logging.Entry("accountID", created.ID))

	withRole, err := s.accountRepository.GetByID(ctx, created.ID, true)
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not re-fetch created account with role.",
			logging.Entry("accountID", created.ID),
			logging.Entry("err", err),
		)
		return Result{Account: created}, nil
	}
	return Result{Account: withRole}, nil
}

// sendWelcomeEmail is best-effort: the account is already persisted, so
// template or delivery failures are logged and never propagated.
func (s *service) sendWelcomeEmail(
	ctx context.Context,
	created account.Account,
	rawPassword account.RawPassword,
	templateURL string,
) {
	html, err := s.templateFetcher.FetchAndRender(ctx, templateURL, map[string]string{
		account.EmailToken:    string(created.Email),
		account.PasswordToken: string(rawPassword),
	})
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not fetch welcome email template.",
			logging.Entry("accountID", created.ID),
			logging.Entry("err", err),
		)
		return
	}
	if html == "" {
		s.log.Info(
			ctx,
			"Welcome email template rendered empty, nothing to send.",
			logging.Entry("accountID", created.ID),
		)
		return
	}
	if err := s.notificationSender.Send(ctx, created.Email, SubjectAccountCreated, html); err != nil {
		s.log.Error(
			ctx,
			"Could not send welcome email.",
			logging.Entry("accountID", created.ID),
			logging.Entry("err", err),
		)
	}
}
