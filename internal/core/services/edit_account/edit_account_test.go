package editaccount

import (
	"context"
	"io"
	"strings"
	"testing"

	"cuentas/internal/core/domain/account"
	c "cuentas/internal/core/domain/common"
	"cuentas/internal/core/domain/logging"
	"cuentas/internal/core/domain/storage"
	"cuentas/internal/core/services"

	"github.com/stretchr/testify/require"
)

const ACCOUNT_ID = account.ID(7)
const EMAIL = "a@x.com"
const PHOTO_URL = "https://storage.test/carpeta_usuario/old.png"

type suite struct {
	log     *logging.FakeLogger
	repo    *account.FakeAccountRepository
	storage *storage.FakeObjectStorage
}

func setupSuite() *suite {
	repo := account.NewFakeAccountRepository()
	repo.Roles = []account.Role{{ID: 1, Name: "Administrador"}, {ID: 2, Name: "Empleado"}}
	repo.Accounts = []account.Account{
		{
			ID:             ACCOUNT_ID,
			Email:          c.Email(EMAIL),
			PasswordDigest: "digest::x",
			Name:           "A",
			Phone:          "555-0100",
			PhotoName:      "old.png",
			PhotoURL:       PHOTO_URL,
			RoleID:         1,
		},
	}
	return &suite{
		log:     logging.NewFakeLogger(),
		repo:    repo,
		storage: storage.NewFakeObjectStorage(PHOTO_URL),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.repo, s.storage)
}

func TestAccountSuccessfullyEdited(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		ID:     ACCOUNT_ID,
		Name:   "B",
		Email:  "b@x.com",
		Phone:  "555-0200",
		RoleID: 2,
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "B", result.Account.Name)
	require.Equal(t, c.Email("b@x.com"), result.Account.Email)
	require.Equal(t, "555-0200", result.Account.Phone)
	require.Equal(t, account.RoleID(2), result.Account.RoleID)
	require.True(t, result.Account.Role.IsPresent)
	require.Equal(t, "Empleado", result.Account.Role.Value.Name)
}

func TestExistingPhotoNameIsKept(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		ID:        ACCOUNT_ID,
		Name:      "A",
		Email:     c.Email(EMAIL),
		Phone:     "555-0100",
		RoleID:    1,
		Photo:     c.NewOptional[io.Reader](strings.NewReader("new-image"), true),
		PhotoName: "new.png",
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "old.png", result.Account.PhotoName)
	require.Equal(t, 1, suite.storage.UploadedCount())
	require.Equal(t, "old.png", suite.storage.Uploaded[0].Name)
	require.Equal(t, account.PhotoFolder, suite.storage.Uploaded[0].Folder)
}

func TestIncomingPhotoNameAdoptedWhenAccountHadNone(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.repo.Accounts[0].PhotoName = ""
	suite.repo.Accounts[0].PhotoURL = ""
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		ID:        ACCOUNT_ID,
		Name:      "A",
		Email:     c.Email(EMAIL),
		Phone:     "555-0100",
		RoleID:    1,
		Photo:     c.NewOptional[io.Reader](strings.NewReader("new-image"), true),
		PhotoName: "new.png",
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "new.png", result.Account.PhotoName)
	require.Equal(t, PHOTO_URL, result.Account.PhotoURL)
	require.Equal(t, "new.png", suite.storage.Uploaded[0].Name)
}

func TestDuplicateEmailOnAnotherAccount(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.repo.Accounts = append(suite.repo.Accounts, account.Account{
		ID:    99,
		Email: "taken@x.com",
	})
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		ID:     ACCOUNT_ID,
		Name:   "A",
		Email:  "taken@x.com",
		Phone:  "555-0100",
		RoleID: 1,
	})

	// Verify ---
	require.ErrorIs(t, err, account.ErrEmailAlreadyExists)
	require.Equal(t, c.Email(EMAIL), suite.repo.Accounts[0].Email)
}

func TestOwnEmailIsNotADuplicate(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		ID:     ACCOUNT_ID,
		Name:   "Renamed",
		Email:  c.Email(EMAIL),
		Phone:  "555-0100",
		RoleID: 1,
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Renamed", result.Account.Name)
}

func TestAccountDoesNotExist(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		ID:     123,
		Name:   "B",
		Email:  "b@x.com",
		Phone:  "555-0200",
		RoleID: 1,
	})

	// Verify ---
	require.ErrorIs(t, err, account.ErrAccountDoesNotExist)
}

func TestPhotoUploadFailure(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.storage.UploadError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		ID:        ACCOUNT_ID,
		Name:      "B",
		Email:     c.Email(EMAIL),
		Phone:     "555-0100",
		RoleID:    1,
		Photo:     c.NewOptional[io.Reader](strings.NewReader("new-image"), true),
		PhotoName: "new.png",
	})

	// Verify ---
	require.Error(t, err)
	require.Equal(t, "A", suite.repo.Accounts[0].Name)
}
