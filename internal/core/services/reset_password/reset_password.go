package resetpassword

import (
	"context"
	"errors"

	"cuentas/internal/core/domain/account"
	c "cuentas/internal/core/domain/common"
	e "cuentas/internal/core/domain/errors"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/domain/notification"
	"cuentas/internal/core/domain/template"
	"cuentas/internal/core/services"
)

const SubjectPasswordReset = "Contraseña reestablecida"

type Input struct {
	Email       c.Email
	TemplateURL string
}

func (i Input) GetRateLimitKey() string {
	return "reset-password::" + string(i.Email)
}

type Result struct{}

type service struct {
	log                logging.Logger
	accountRepository  account.AccountRepository
	passwordGenerator  account.PasswordGenerator
	passwordHasher     account.PasswordHasher
	templateFetcher    template.Fetcher
	notificationSender notification.Sender
}

func New(
	log logging.Logger,
	accountRepository account.AccountRepository,
	passwordGenerator account.PasswordGenerator,
	passwordHasher account.PasswordHasher,
	templateFetcher template.Fetcher,
	notificationSender notification.Sender,
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
	if templateFetcher == nil {
		panic(e.NewNilArgumentError("templateFetcher"))
	}
	if notificationSender == nil {
		panic(e.NewNilArgumentError("notificationSender"))
	}
	return &service{
		log:                log,
		accountRepository:  accountRepository,
		passwordGenerator:  passwordGenerator,
		passwordHasher:     passwordHasher,
		templateFetcher:    templateFetcher,
		notificationSender: notificationSender,
	}
}

// Run persists the new digest only after the notification email has been
// accepted for delivery. Any earlier failure leaves the stored credential
// untouched.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByEmail(ctx, input.Email, false)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(ctx, "Account not found for password reset.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	rawPassword := s.passwordGenerator.GeneratePassword()
	newDigest, err := s.passwordHasher.HashPassword(rawPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash generated password.", logging.Entry("err", err))
		return result, err
	}

	html, err := s.templateFetcher.FetchAndRender(ctx, input.TemplateURL, map[string]string{
		account.EmailToken:    string(a.Email),
		account.PasswordToken: string(rawPassword),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not fetch password reset template.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if html == "" {
		s.log.Warning(
			ctx,
			"Password reset template rendered empty, aborting reset.",
			logging.Entry("accountID", a.ID),
		)
		return result, account.ErrNothingToSend
	}

	if err := s.notificationSender.Send(ctx, a.Email, SubjectPasswordReset, html); err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset email, aborting reset.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, account.ErrNotificationNotSent
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

	s.log.Info(ctx, "Account password has been reset.", logging.Entry("accountID", a.ID))
	return Result{}, nil
}
