package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
)

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) ReadAll(ctx context.Context) ([]User, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read users")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users, nil
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, email Email, hash PasswordHash) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.Email == email {
			r.Users[ix].PasswordHash = hash
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeResetTokenRepository struct {
	Tokens      []ResetTokenRecord
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetTokenRepository() *FakeResetTokenRepository {
	return &FakeResetTokenRepository{Tokens: make([]ResetTokenRecord, 0, 10)}
}

func (r *FakeResetTokenRepository) Create(
	ctx context.Context,
	input CreateResetTokenInput,
) (rec ResetTokenRecord, err error) {
	if r.ReturnError {
		return rec, fmt.Errorf("could not create reset token %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rec = ResetTokenRecord{
		Token:     input.Token,
		Email:     input.Email,
		ExpiresAt: input.ExpiresAt,
	}
	r.Tokens = append(r.Tokens, rec)
	return rec, nil
}

func (r *FakeResetTokenRepository) GetByToken(
	ctx context.Context,
	token ResetToken,
) (rec ResetTokenRecord, err error) {
	if r.ReturnError {
		return rec, fmt.Errorf("could not get reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, rec := range r.Tokens {
		if rec.Token == token {
			return rec, nil
		}
	}
	return rec, ErrResetTokenDoesNotExist
}

func (r *FakeResetTokenRepository) Consume(ctx context.Context, token ResetToken) error {
	if r.ReturnError {
		return fmt.Errorf("could not consume reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, rec := range r.Tokens {
		if rec.Token == token {
			r.Tokens = append(r.Tokens[:ix], r.Tokens[ix+1:]...)
			return nil
		}
	}
	return ErrResetTokenDoesNotExist
}

func (r *FakeResetTokenRepository) DeleteByEmail(ctx context.Context, email Email) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete reset tokens for %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := r.Tokens[:0]
	for _, rec := range r.Tokens {
		if rec.Email != email {
			kept = append(kept, rec)
		}
	}
	r.Tokens = kept
	return nil
}

type FakeResetTokenGenerator struct {
	Token ResetToken
}

func NewFakeResetTokenGenerator(token string) *FakeResetTokenGenerator {
	return &FakeResetTokenGenerator{Token: ResetToken(token)}
}

func (g *FakeResetTokenGenerator) GenerateResetToken() ResetToken {
	return g.Token
}

type SentResetLink struct {
	To   Email
	Link ResetLink
}

type FakeResetLinkSender struct {
	Sent        []SentResetLink
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetLinkSender() *FakeResetLinkSender {
	return &FakeResetLinkSender{}
}

func (s *FakeResetLinkSender) SendResetLink(ctx context.Context, to Email, link ResetLink) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset link to %v", to)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentResetLink{To: to, Link: link})
	return nil
}

func (s *FakeResetLinkSender) SentCount() int {
	return len(s.Sent)
}

func (s *FakeResetLinkSender) LastSentTo() SentResetLink {
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
