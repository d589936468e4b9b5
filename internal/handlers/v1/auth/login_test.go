package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

// mockCredentialChecker is a mock for credentialChecker.
type mockCredentialChecker struct {
	mock.Mock
}

func (m *mockCredentialChecker) SignIn(ctx context.Context, input service.SignInInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func newLoginTestAPI(t *testing.T, svc credentialChecker) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLoginHandler(svc).Register(api)
	return api
}

func TestHTTP_Login_Success(t *testing.T) {
	mockSvc := new(mockCredentialChecker)
	mockSvc.On("SignIn", mock.Anything, service.SignInInput{
		Email:    "ada@example.com",
		Password: "correcthorse",
	}).Return("signed.jwt.token", nil)

	resp := newLoginTestAPI(t, mockSvc).Post("/v1/auth/login", LoginBody{
		Email:    "ada@example.com",
		Password: "correcthorse",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed.jwt.token", body.Token)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_BadCredentials(t *testing.T) {
	mockSvc := new(mockCredentialChecker)
	mockSvc.On("SignIn", mock.Anything, mock.Anything).
		Return("", service.ErrInvalidCredentials)

	resp := newLoginTestAPI(t, mockSvc).Post("/v1/auth/login", LoginBody{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertExpectations(t)
}
