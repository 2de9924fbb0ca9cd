package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbill/internal/application/auth/usecases"
	"netbill/internal/interfaces/http/handlers/testutil"
	"netbill/internal/shared/errors"
)

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
	cmd    usecases.LoginCommand
	calls  int
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	m.calls++
	m.cmd = cmd
	return m.result, m.err
}

func TestAuthHandler_Login_Success(t *testing.T) {
	loginUC := &mockLoginUC{result: &usecases.LoginResult{
		Token:     "jwt-token",
		ExpiresIn: 3600,
		UserID:    1,
		Name:      "Admin",
		Email:     "admin@example.com",
	}}
	h := NewAuthHandler(loginUC, testutil.NewMockLogger())

	body := map[string]interface{}{
		"email":    "admin@example.com",
		"password": "secret",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", body)

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@example.com", loginUC.cmd.Email)
	assert.Equal(t, "secret", loginUC.cmd.Password)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var result usecases.LoginResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, "jwt-token", result.Token)
	assert.Equal(t, int64(3600), result.ExpiresIn)
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	loginUC := &mockLoginUC{}
	h := NewAuthHandler(loginUC, testutil.NewMockLogger())

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing email", map[string]interface{}{"password": "secret"}},
		{"missing password", map[string]interface{}{"email": "admin@example.com"}},
		{"malformed email", map[string]interface{}{"email": "not-an-email", "password": "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", tt.body)

			h.Login(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Equal(t, 0, loginUC.calls)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	loginUC := &mockLoginUC{err: errors.NewBadRequestError("invalid email or password")}
	h := NewAuthHandler(loginUC, testutil.NewMockLogger())

	body := map[string]interface{}{
		"email":    "admin@example.com",
		"password": "wrong",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", body)

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid email or password", resp.Error.Message)
}
