package listaccounts

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
	repo.Roles = []account.Role{{ID: 1, Name: "Administrador"}, {ID: 2, Name: "Empleado"}}
	repo.Accounts = []account.Account{
		{ID: 1, Email: "a@x.com", PasswordDigest: "digest::a", Name: "A", RoleID: 1},
		{ID: 2, Email: "b@x.com", PasswordDigest: "digest::b", Name: "B", RoleID: 2},
	}
	return &suite{log: logging.NewFakeLogger(), repo: repo}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.repo)
}

func TestAllAccountsListedWithRoles(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	require.NoError(t, err)
	require.Len(t, result.Accounts, 2)
	require.Equal(t, "Administrador", result.Accounts[0].Role.Value.Name)
	require.Equal(t, "Empleado", result.Accounts[1].Role.Value.Name)
}

func TestEmptyList(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.repo.Accounts = nil
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	require.NoError(t, err)
	require.Len(t, result.Accounts, 0)
}
