package getaccountbyid

import (
	"context"
	"testing"

	"cuentas/internal/core/domain/account"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/services"

	"github.com/stretchr/testify/require"
)

type suite struct {
	log  *logging.FakeLogger
	repo *account.FakeAccountRepository
}

func setupSuite() *suite {
	repo := account.NewFakeAccountRepository()
	repo.Roles = []account.Role{{ID: 1, Name: "Administrador"}}
	repo.Accounts = []account.Account{
		{ID: 1, Email: "a@x.com", PasswordDigest: "digest::x", Name: "A", RoleID: 1},
	}
	return &suite{log: logging.NewFakeLogger(), repo: repo}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.repo)
}

func TestAccountFoundWithRole(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{ID: 1})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, account.ID(1), result.Account.ID)
	require.True(t, result.Account.Role.IsPresent)
	require.Equal(t, "Administrador", result.Account.Role.Value.Name)
}

func TestAccountDoesNotExist(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{ID: 99})

	// Verify ---
	require.ErrorIs(t, err, account.ErrAccountDoesNotExist)
}
