package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cuentas/internal/core/domain/account"
	c "cuentas/internal/core/domain/common"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "account_email_idx"

const accountColumns = `a.id, a.email, a.password_digest, a.name, a.phone, a.photo_name, a.photo_url, a.role_id, a.created_at`
const roleColumns = `r.id, r.name`

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	if pool == nil {
		panic("Argument pool must not be nil.")
	}
	return &PgxAccountRepository{pool: pool}
}

func (r *PgxAccountRepository) Create(
	ctx context.Context,
	input account.CreateAccountInput,
) (a account.Account, err error) {
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO account (email, password_digest, name, phone, photo_name, photo_url, role_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, email, password_digest, name, phone, photo_name, photo_url, role_id, created_at`,
		string(input.Email),
		string(input.PasswordDigest),
		input.Name,
		input.Phone,
		input.PhotoName,
		input.PhotoURL,
		int64(input.RoleID),
		input.CreatedAt,
	)
	a, err = scanAccount(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return a, account.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxAccountRepository) GetByID(
	ctx context.Context,
	id account.ID,
	includeRole bool,
) (account.Account, error) {
	return r.getOne(ctx, "a.id = $1", includeRole, int64(id))
}

func (r *PgxAccountRepository) GetByEmail(
	ctx context.Context,
	email c.Email,
	includeRole bool,
) (account.Account, error) {
	return r.getOne(ctx, "a.email = $1", includeRole, string(email))
}

func (r *PgxAccountRepository) GetByEmailAndDigest(
	ctx context.Context,
	email c.Email,
	digest account.PasswordDigest,
) (account.Account, error) {
	return r.getOne(ctx, "a.email = $1 AND a.password_digest = $2", false, string(email), string(digest))
}

func (r *PgxAccountRepository) List(ctx context.Context, includeRole bool) ([]account.Account, error) {
	rows, err := r.pool.Query(ctx, selectQuery("", includeRole)+" ORDER BY a.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]account.Account, 0)
	for rows.Next() {
		var a account.Account
		if includeRole {
			a, err = scanAccountWithRole(rows)
		} else {
			a, err = scanAccount(rows)
		}
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *PgxAccountRepository) Update(
	ctx context.Context,
	input account.UpdateAccountInput,
) (a account.Account, err error) {
	set := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)
	args = append(args, int64(input.ID))

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.DoNameUpdate {
		addSet("name", input.Name)
	}
	if input.DoEmailUpdate {
		addSet("email", string(input.Email))
	}
	if input.DoPhoneUpdate {
		addSet("phone", input.Phone)
	}
	if input.DoRoleUpdate {
		addSet("role_id", int64(input.RoleID))
	}
	if input.DoPhotoNameUpdate {
		addSet("photo_name", input.PhotoName)
	}
	if input.DoPhotoURLUpdate {
		addSet("photo_url", input.PhotoURL)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, input.ID, false)
	}

	row := r.pool.QueryRow(
		ctx,
		fmt.Sprintf(
			`UPDATE account AS a SET %s WHERE a.id = $1
			 RETURNING %s`,
			strings.Join(set, ", "),
			accountColumns,
		),
		args...,
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return a, account.ErrEmailAlreadyExists
		}
	}
	return a, err
}

func (r *PgxAccountRepository) SetPasswordDigest(
	ctx context.Context,
	id account.ID,
	digest account.PasswordDigest,
) error {
	tag, err := r.pool.Exec(
		ctx,
		`UPDATE account SET password_digest = $2 WHERE id = $1`,
		int64(id),
		string(digest),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

func (r *PgxAccountRepository) Delete(ctx context.Context, id account.ID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM account WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

func (r *PgxAccountRepository) getOne(
	ctx context.Context,
	condition string,
	includeRole bool,
	args ...interface{},
) (a account.Account, err error) {
	row := r.pool.QueryRow(ctx, selectQuery(condition, includeRole), args...)
	if includeRole {
		a, err = scanAccountWithRole(row)
	} else {
		a, err = scanAccount(row)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func selectQuery(condition string, includeRole bool) string {
	columns := accountColumns
	join := ""
	if includeRole {
		columns = accountColumns + ", " + roleColumns
		join = " LEFT JOIN role AS r ON r.id = a.role_id"
	}
	q := fmt.Sprintf("SELECT %s FROM account AS a%s", columns, join)
	if condition != "" {
		q += " WHERE " + condition
	}
	return q
}

func scanAccount(row pgx.Row) (a account.Account, err error) {
	var id, roleID int64
	var email string
	err = row.Scan(
		&id,
		&email,
		&a.PasswordDigest,
		&a.Name,
		&a.Phone,
		&a.PhotoName,
		&a.PhotoURL,
		&roleID,
		&a.CreatedAt,
	)
	if err != nil {
		return a, err
	}
	a.ID = account.ID(id)
	a.Email = c.Email(email)
	a.RoleID = account.RoleID(roleID)
	return a, nil
}

func scanAccountWithRole(row pgx.Row) (a account.Account, err error) {
	var id, roleID int64
	var email string
	var joinedRoleID *int64
	var joinedRoleName *string
	err = row.Scan(
		&id,
		&email,
		&a.PasswordDigest,
		&a.Name,
		&a.Phone,
		&a.PhotoName,
		&a.PhotoURL,
		&roleID,
		&a.CreatedAt,
		&joinedRoleID,
		&joinedRoleName,
	)
	if err != nil {
		return a, err
	}
	a.ID = account.ID(id)
	a.Email = c.Email(email)
	a.RoleID = account.RoleID(roleID)
	if joinedRoleID != nil && joinedRoleName != nil {
		a.Role = c.NewOptional(
			account.Role{ID: account.RoleID(*joinedRoleID), Name: *joinedRoleName},
			true,
		)
	}
	return a, nil
}
