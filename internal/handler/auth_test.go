package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/handler"
)

const testCookieName = "stockroom_session"

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) {
	m.Called(ctx, token)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if user := args.Get(0); user != nil {
		return user.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	return nil
}

func TestHandleLogin(t *testing.T) {
	t.Run("valid credentials set a session cookie", func(t *testing.T) {
		mockSvc := new(mockAuthService)
		mockSvc.On("Login", mock.Anything, "admin", "secret").Return("token-123", nil)

		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"admin","password":"secret"}`))
		rec := httptest.NewRecorder()
		handler.HandleLogin(mockSvc, testCookieName, false)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "token-123", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)

		var resp handler.SuccessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, handler.MsgLoggedIn, resp.Message)
	})

	t.Run("bad credentials are unauthorized without a cookie", func(t *testing.T) {
		mockSvc := new(mockAuthService)
		mockSvc.On("Login", mock.Anything, "admin", "wrong").Return("", domain.ErrInvalidCredential)

		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"admin","password":"wrong"}`))
		rec := httptest.NewRecorder()
		handler.HandleLogin(mockSvc, testCookieName, false)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrMsgBadCredentials)
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		mockSvc := new(mockAuthService)

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("not-json"))
		rec := httptest.NewRecorder()
		handler.HandleLogin(mockSvc, testCookieName, false)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Login")
	})
}

func TestHandleLogout(t *testing.T) {
	t.Run("session is discarded and cookie cleared", func(t *testing.T) {
		mockSvc := new(mockAuthService)
		mockSvc.On("Logout", mock.Anything, "token-123").Return()

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "token-123"})
		rec := httptest.NewRecorder()
		handler.HandleLogout(mockSvc, testCookieName)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
		mockSvc.AssertExpectations(t)
	})

	t.Run("logout without a session still succeeds", func(t *testing.T) {
		mockSvc := new(mockAuthService)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rec := httptest.NewRecorder()
		handler.HandleLogout(mockSvc, testCookieName)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertNotCalled(t, "Logout")
	})
}
