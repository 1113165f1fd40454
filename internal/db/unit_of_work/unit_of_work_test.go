package uow

import (
	"accounts/internal/core/domain/user"
	"accounts/internal/db"
	dbuser "accounts/internal/db/user"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL = "ana@example.com"
	TOKEN = "7cb96e07-0cb8-4d55-a3bb-1d77c9e966e5"
)

var NOW time.Time = time.Date(2023, 2, 2, 10, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestRollbackDiscardsChanges() {
	s.createUser()
	ctx := context.Background()

	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)

	err = uow.Users().SetPassword(ctx, user.Email(EMAIL), user.PasswordHash("new-hash"))
	s.Nil(err)
	err = uow.Rollback(ctx)
	s.Nil(err)

	u, err := dbuser.NewPgxRepository(s.pool).GetByEmail(ctx, user.Email(EMAIL))
	s.Nil(err)
	s.Equal(user.PasswordHash("old-hash"), u.PasswordHash)
}

func (s *testSuite) TestCommitPersistsChanges() {
	s.createUser()
	ctx := context.Background()

	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)

	err = uow.Users().SetPassword(ctx, user.Email(EMAIL), user.PasswordHash("new-hash"))
	s.Nil(err)
	err = uow.ResetTokens().Consume(ctx, user.ResetToken(TOKEN))
	s.Nil(err)
	err = uow.Commit(ctx)
	s.Nil(err)

	u, err := dbuser.NewPgxRepository(s.pool).GetByEmail(ctx, user.Email(EMAIL))
	s.Nil(err)
	s.Equal(user.PasswordHash("new-hash"), u.PasswordHash)

	var count int
	err = s.pool.QueryRow(ctx, "SELECT count(*) FROM password_reset_token").Scan(&count)
	s.Nil(err)
	s.Equal(0, count)
}

func (s *testSuite) createUser() {
	s.T().Helper()

	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.FailNowf("could not begin uow", "%v", err)
	}
	defer uow.Rollback(ctx)

	_, err = uow.Users().Create(ctx, user.CreateUserInput{
		FirstName:    "Ana",
		LastName:     "Lima",
		Email:        user.Email(EMAIL),
		PasswordHash: user.PasswordHash("old-hash"),
		CreatedAt:    NOW,
	})
	if err != nil {
		s.FailNowf("could not create user", "%v", err)
	}

	_, err = uow.ResetTokens().Create(ctx, user.CreateResetTokenInput{
		Token:     user.ResetToken(TOKEN),
		Email:     user.Email(EMAIL),
		ExpiresAt: NOW.Add(15 * time.Minute),
	})
	if err != nil {
		s.FailNowf("could not create reset token", "%v", err)
	}

	uow.Commit(ctx)
}
