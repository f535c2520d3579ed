package deleteaccount

import (
	"context"
	"testing"

	"cuentas/internal/core/domain/account"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/domain/storage"
	"cuentas/internal/core/services"

	"github.com/stretchr/testify/require"
)

const ACCOUNT_ID = account.ID(3)

type suite struct {
	log     *logging.FakeLogger
	repo    *account.FakeAccountRepository
	storage *storage.FakeObjectStorage
}

func setupSuite() *suite {
	repo := account.NewFakeAccountRepository()
	repo.Accounts = []account.Account{
		{
			ID:             ACCOUNT_ID,
			Email:          "a@x.com",
			PasswordDigest: "digest::x",
			Name:           "A",
			PhotoName:      "photo.png",
			PhotoURL:       "https://storage.test/carpeta_usuario/photo.png",
			RoleID:         1,
		},
	}
	return &suite{
		log:     logging.NewFakeLogger(),
		repo:    repo,
		storage: storage.NewFakeObjectStorage(""),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.repo, s.storage)
}

func TestAccountSuccessfullyDeleted(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{ID: ACCOUNT_ID})

	// Verify ---
	require.NoError(t, err)
	require.Len(t, suite.repo.Accounts, 0)
	require.Equal(t, 1, suite.storage.DeletedCount())
	require.Equal(t, account.PhotoFolder, suite.storage.Deleted[0].Folder)
	require.Equal(t, "photo.png", suite.storage.Deleted[0].Name)
}

func TestBlobDeletionFailureDoesNotFailOperation(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.storage.DeleteError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{ID: ACCOUNT_ID})

	// Verify ---
	require.NoError(t, err)
	require.Len(t, suite.repo.Accounts, 0)
}

func TestNoBlobDeletionWithoutPhoto(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.repo.Accounts[0].PhotoName = ""
	suite.repo.Accounts[0].PhotoURL = ""
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{ID: ACCOUNT_ID})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, 0, suite.storage.DeletedCount())
}

func TestAccountDoesNotExist(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{ID: 99})

	// Verify ---
	require.ErrorIs(t, err, account.ErrAccountDoesNotExist)
	require.Equal(t, 0, suite.storage.DeletedCount())
}

func TestPersistenceFailureSkipsBlobDeletion(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.repo.DeleteError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{ID: ACCOUNT_ID})

	// Verify ---
	require.Error(t, err)
	require.Len(t, suite.repo.Accounts, 1)
	require.Equal(t, 0, suite.storage.DeletedCount())
}
