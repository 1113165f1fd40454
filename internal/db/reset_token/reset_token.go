package resettoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
)

type PgxResetTokenRepository struct {
	db db.Connection
}

func NewPgxRepository(db db.Connection) *PgxResetTokenRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxResetTokenRepository{db: db}
}

func (r *PgxResetTokenRepository) Create(
	ctx context.Context,
	input user.CreateResetTokenInput,
) (rec user.ResetTokenRecord, err error) {
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO password_reset_token (token, email, expires_at) VALUES ($1, $2, $3)`,
		string(input.Token),
		string(input.Email),
		input.ExpiresAt,
	)
	if err != nil {
		return rec, err
	}
	return user.ResetTokenRecord{
		Token:     input.Token,
		Email:     input.Email,
		ExpiresAt: input.ExpiresAt,
	}, nil
}

func (r *PgxResetTokenRepository) GetByToken(
	ctx context.Context,
	token user.ResetToken,
) (rec user.ResetTokenRecord, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT token, email, expires_at FROM password_reset_token WHERE token = $1`,
		string(token),
	)
	var tokenValue, email string
	err = row.Scan(&tokenValue, &email, &rec.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return rec, user.ErrResetTokenDoesNotExist
	}
	if err != nil {
		return rec, err
	}
	rec.Token = user.ResetToken(tokenValue)
	rec.Email = user.Email(email)
	return rec, nil
}

// Consume deletes the token row. The conditional delete makes consumption
// first-writer-wins: a concurrent transaction that deleted the row first
// leaves nothing to delete here, and the caller sees
// ErrResetTokenDoesNotExist.
func (r *PgxResetTokenRepository) Consume(ctx context.Context, token user.ResetToken) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM password_reset_token WHERE token = $1`,
		string(token),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrResetTokenDoesNotExist
	}
	return nil
}

func (r *PgxResetTokenRepository) DeleteByEmail(ctx context.Context, email user.Email) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM password_reset_token WHERE email = $1`,
		string(email),
	)
	return err
}
