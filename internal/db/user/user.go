package user

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

type PgxUserRepository struct {
	db db.Connection
}

func NewPgxRepository(db db.Connection) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (first_name, last_name, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		input.FirstName,
		input.LastName,
		string(input.Email),
		string(input.PasswordHash),
		input.CreatedAt,
	)

	var id int64
	err = row.Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}

	u = user.User{
		ID:           user.ID(id),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email user.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, first_name, last_name, email, password_hash, created_at
		 FROM "user"
		 WHERE email = $1`,
		string(email),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) ReadAll(ctx context.Context) (users []user.User, err error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, first_name, last_name, email, password_hash, created_at
		 FROM "user"
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) SetPassword(
	ctx context.Context,
	email user.Email,
	hash user.PasswordHash,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_hash = $1 WHERE email = $2`,
		string(hash),
		string(email),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var id int64
	var email, passwordHash string
	err = row.Scan(&id, &u.FirstName, &u.LastName, &email, &passwordHash, &u.CreatedAt)
	if err != nil {
		return u, err
	}
	u.ID = user.ID(id)
	u.Email = user.Email(email)
	u.PasswordHash = user.PasswordHash(passwordHash)
	return u, nil
}
