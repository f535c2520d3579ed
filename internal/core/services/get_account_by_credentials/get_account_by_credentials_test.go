package getaccountbycredentials

import (
	"context"
	"testing"

	"cuentas/internal/core/domain/account"
	c "cuentas/internal/core/domain/common"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/services"

	"github.com/stretchr/testify/require"
)

const EMAIL = "a@x.com"
const PASSWORD = "secret-password"

type suite struct {
	log    *logging.FakeLogger
	repo   *account.FakeAccountRepository
	hasher *account.FakePasswordHasher
}

func setupSuite() *suite {
	hasher := account.NewFakePasswordHasher()
	digest, _ := hasher.HashPassword(PASSWORD)
	repo := account.NewFakeAccountRepository()
	repo.Accounts = []account.Account{
		{ID: 1, Email: c.Email(EMAIL), PasswordDigest: digest, Name: "A", RoleID: 1},
	}
	return &suite{log: logging.NewFakeLogger(), repo: repo, hasher: hasher}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.repo, s.hasher)
}

func TestValidCredentials(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, account.ID(1), result.Account.ID)
	require.Equal(t, c.Email(EMAIL), result.Account.Email)
}

func TestWrongPassword(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: EMAIL, Password: "wrong-password"})

	// Verify ---
	require.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestUnknownEmail(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: "unknown@x.com", Password: PASSWORD})

	// Verify ---
	require.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestRateLimitKey(t *testing.T) {
	// Setup ---
	input := Input{Email: EMAIL, Password: PASSWORD}

	// Exercise ---
	key := input.GetRateLimitKey()

	// Verify ---
	require.Equal(t, "get-account-by-credentials::"+EMAIL, key)
}
