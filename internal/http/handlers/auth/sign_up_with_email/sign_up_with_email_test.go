package signupwithemail

import (
	"accounts/internal/core/domain/user"
	service "accounts/internal/core/services/sign_up_with_email"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.User = user.User{
		ID:        user.ID(1),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		CreatedAt: time.Date(2023, 2, 2, 10, 30, 30, 0, time.UTC),
	}
	return result, nil
}

func TestSignUpWithEmailHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "success",
			body:           `{"first_name": "Ana", "last_name": "Lima", "email": "ana@example.com", "password": "secret123"}`,
			expectedStatus: http.StatusCreated,
			expectedInput: &service.Input{
				FirstName: "Ana",
				LastName:  "Lima",
				Email:     user.Email("ana@example.com"),
				Password:  user.RawPassword("secret123"),
			},
		},
		{
			id:             "invalid json",
			body:           `{"first_name": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing first name",
			body:           `{"last_name": "Lima", "email": "ana@example.com", "password": "secret123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing last name",
			body:           `{"first_name": "Ana", "email": "ana@example.com", "password": "secret123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid email",
			body:           `{"first_name": "Ana", "last_name": "Lima", "email": "not-an-email", "password": "secret123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password too short",
			body:           `{"first_name": "Ana", "last_name": "Lima", "email": "ana@example.com", "password": "short"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "email already exists",
			body:           `{"first_name": "Ana", "last_name": "Lima", "email": "ana@example.com", "password": "secret123"}`,
			serviceErr:     user.ErrEmailAlreadyExists,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/auth/signup", strings.NewReader(testcase.body))
			if err != nil {
				t.Fatal(err)
			}

			service := &stubService{err: testcase.serviceErr}
			rr := httptest.NewRecorder()
			handler := New(service)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.expectedInput != nil {
				assert.Equal(t, testcase.expectedInput, service.input)
			}
		})
	}
}

func TestSignUpWithEmailResponseOmitsPassword(t *testing.T) {
	req, err := http.NewRequest(
		"POST",
		"/auth/signup",
		strings.NewReader(`{"first_name": "Ana", "last_name": "Lima", "email": "ana@example.com", "password": "secret123"}`),
	)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler := New(&stubService{})
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"email":"ana@example.com"`)
	assert.NotContains(t, rr.Body.String(), "secret123")
	assert.NotContains(t, rr.Body.String(), "password")
}
