package account

import (
	"context"
	"os"
	"testing"
	"time"

	"cuentas/internal/core/domain/account"
	c "cuentas/internal/core/domain/common"
	"cuentas/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	repo   *PgxAccountRepository
	roleID account.RoleID
}

func TestPgxAccountRepository(t *testing.T) {
	if os.Getenv("TEST_POSTGRESQL_URL") == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupSuite() {
	s.pool = db.CreateTestPool()
	s.repo = NewPgxRepository(s.pool)
}

func (s *testSuite) TearDownSuite() {
	s.pool.Close()
}

func (s *testSuite) SetupTest() {
	var roleID int64
	err := s.pool.QueryRow(
		context.Background(),
		`INSERT INTO role (name) VALUES ('Administrador') RETURNING id`,
	).Scan(&roleID)
	s.Require().NoError(err)
	s.roleID = account.RoleID(roleID)
}

func (s *testSuite) TearDownTest() {
	db.TruncateTables(s.pool)
}

func (s *testSuite) createAccount(email string) account.Account {
	a, err := s.repo.Create(context.Background(), account.CreateAccountInput{
		Email:          c.Email(email),
		PasswordDigest: account.PasswordDigest("digest::" + email),
		Name:           "A",
		Phone:          "555-0100",
		RoleID:         s.roleID,
		CreatedAt:      time.Now().UTC().Truncate(time.Millisecond),
	})
	s.Require().NoError(err)
	return a
}

func (s *testSuite) TestCreateSuccess() {
	createdAt := time.Now().UTC().Truncate(time.Millisecond)
	a, err := s.repo.Create(context.Background(), account.CreateAccountInput{
		Email:          "a@x.com",
		PasswordDigest: "digest::a",
		Name:           "A",
		Phone:          "555-0100",
		PhotoName:      "photo.png",
		PhotoURL:       "https://storage.test/carpeta_usuario/photo.png",
		RoleID:         s.roleID,
		CreatedAt:      createdAt,
	})

	s.Require().NoError(err)
	s.Require().NotZero(a.ID)
	s.Require().Equal(c.Email("a@x.com"), a.Email)
	s.Require().Equal(account.PasswordDigest("digest::a"), a.PasswordDigest)
	s.Require().Equal("A", a.Name)
	s.Require().Equal("555-0100", a.Phone)
	s.Require().Equal("photo.png", a.PhotoName)
	s.Require().Equal("https://storage.test/carpeta_usuario/photo.png", a.PhotoURL)
	s.Require().Equal(s.roleID, a.RoleID)
	s.Require().True(createdAt.Equal(a.CreatedAt))
}

func (s *testSuite) TestCreateDuplicateEmail() {
	s.createAccount("a@x.com")

	_, err := s.repo.Create(context.Background(), account.CreateAccountInput{
		Email:          "a@x.com",
		PasswordDigest: "digest::other",
		Name:           "B",
		RoleID:         s.roleID,
		CreatedAt:      time.Now().UTC(),
	})

	s.Require().ErrorIs(err, account.ErrEmailAlreadyExists)
}

func (s *testSuite) TestGetByID() {
	created := s.createAccount("a@x.com")

	a, err := s.repo.GetByID(context.Background(), created.ID, false)

	s.Require().NoError(err)
	s.Require().Equal(created.ID, a.ID)
	s.Require().Equal(created.Email, a.Email)
	s.Require().False(a.Role.IsPresent)
}

func (s *testSuite) TestGetByIDWithRole() {
	created := s.createAccount("a@x.com")

	a, err := s.repo.GetByID(context.Background(), created.ID, true)

	s.Require().NoError(err)
	s.Require().True(a.Role.IsPresent)
	s.Require().Equal(s.roleID, a.Role.Value.ID)
	s.Require().Equal("Administrador", a.Role.Value.Name)
}

func (s *testSuite) TestGetByIDDoesNotExist() {
	_, err := s.repo.GetByID(context.Background(), 99999, false)

	s.Require().ErrorIs(err, account.ErrAccountDoesNotExist)
}

func (s *testSuite) TestGetByEmail() {
	created := s.createAccount("a@x.com")

	a, err := s.repo.GetByEmail(context.Background(), "a@x.com", false)

	s.Require().NoError(err)
	s.Require().Equal(created.ID, a.ID)
}

func (s *testSuite) TestGetByEmailAndDigest() {
	created := s.createAccount("a@x.com")

	a, err := s.repo.GetByEmailAndDigest(context.Background(), "a@x.com", "digest::a@x.com")
	s.Require().NoError(err)
	s.Require().Equal(created.ID, a.ID)

	_, err = s.repo.GetByEmailAndDigest(context.Background(), "a@x.com", "digest::wrong")
	s.Require().ErrorIs(err, account.ErrAccountDoesNotExist)
}

func (s *testSuite) TestList() {
	first := s.createAccount("a@x.com")
	second := s.createAccount("b@x.com")

	accounts, err := s.repo.List(context.Background(), true)

	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Require().Equal(first.ID, accounts[0].ID)
	s.Require().Equal(second.ID, accounts[1].ID)
	s.Require().True(accounts[0].Role.IsPresent)
	s.Require().Equal("Administrador", accounts[0].Role.Value.Name)
}

func (s *testSuite) TestUpdateOnlyFlaggedFields() {
	created := s.createAccount("a@x.com")

	a, err := s.repo.Update(context.Background(), account.UpdateAccountInput{
		ID:            created.ID,
		DoPhoneUpdate: true,
		Phone:         "555-0200",
	})

	s.Require().NoError(err)
	s.Require().Equal("555-0200", a.Phone)
	s.Require().Equal(created.Email, a.Email)
	s.Require().Equal(created.Name, a.Name)
}

func (s *testSuite) TestUpdatePhotoFields() {
	created := s.createAccount("a@x.com")

	a, err := s.repo.Update(context.Background(), account.UpdateAccountInput{
		ID:                created.ID,
		DoPhotoNameUpdate: true,
		PhotoName:         "photo.png",
		DoPhotoURLUpdate:  true,
		PhotoURL:          "https://storage.test/carpeta_usuario/photo.png",
	})

	s.Require().NoError(err)
	s.Require().Equal("photo.png", a.PhotoName)
	s.Require().Equal("https://storage.test/carpeta_usuario/photo.png", a.PhotoURL)
}

func (s *testSuite) TestUpdateDuplicateEmail() {
	s.createAccount("a@x.com")
	other := s.createAccount("b@x.com")

	_, err := s.repo.Update(context.Background(), account.UpdateAccountInput{
		ID:            other.ID,
		DoEmailUpdate: true,
		Email:         "a@x.com",
	})

	s.Require().ErrorIs(err, account.ErrEmailAlreadyExists)
}

func (s *testSuite) TestUpdateDoesNotExist() {
	_, err := s.repo.Update(context.Background(), account.UpdateAccountInput{
		ID:           99999,
		DoNameUpdate: true,
		Name:         "B",
	})

	s.Require().ErrorIs(err, account.ErrAccountDoesNotExist)
}

func (s *testSuite) TestSetPasswordDigest() {
	created := s.createAccount("a@x.com")

	err := s.repo.SetPasswordDigest(context.Background(), created.ID, "digest::new")
	s.Require().NoError(err)

	a, err := s.repo.GetByID(context.Background(), created.ID, false)
	s.Require().NoError(err)
	s.Require().Equal(account.PasswordDigest("digest::new"), a.PasswordDigest)
}

func (s *testSuite) TestSetPasswordDigestDoesNotExist() {
	err := s.repo.SetPasswordDigest(context.Background(), 99999, "digest::new")

	s.Require().ErrorIs(err, account.ErrAccountDoesNotExist)
}

func (s *testSuite) TestDelete() {
	created := s.createAccount("a@x.com")

	err := s.repo.Delete(context.Background(), created.ID)
	s.Require().NoError(err)

	_, err = s.repo.GetByID(context.Background(), created.ID, false)
	s.Require().ErrorIs(err, account.ErrAccountDoesNotExist)
}

func (s *testSuite) TestDeleteDoesNotExist() {
	err := s.repo.Delete(context.Background(), 99999)

	s.Require().ErrorIs(err, account.ErrAccountDoesNotExist)
}
