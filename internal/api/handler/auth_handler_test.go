package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.TokenPair, error)
	refreshFn  func(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	logoutFn   func(ctx context.Context, refreshToken string) error
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	return s.refreshFn(ctx, refreshToken)
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.logoutFn(ctx, refreshToken)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			if username != "alice" || email != "a@x.com" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s %s", username, email, password)
			}
			return &domain.User{ID: "user-1", Username: username, Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"alice","email":"a@x.com","password":"pw1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["_id"] != "user-1" || resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["passwordHash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec, e := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"alice"}`)
	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.TokenPair, error) {
			return &domain.TokenPair{AccessToken: "acc", RefreshToken: "ref"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"pw1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "acc" || resp["refreshToken"] != "ref" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.TokenPair, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"bad"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Refresh_MissingHeader(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec, e := newTestContext(t, http.MethodPost, "/auth/refreshToken", "")
	if err := h.Refresh(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
			if refreshToken != "the-token" {
				t.Fatalf("unexpected token: %s", refreshToken)
			}
			return &domain.TokenPair{AccessToken: "acc2", RefreshToken: "ref2"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec, _ := newTestContext(t, http.MethodPost, "/auth/refreshToken", "")
	c.Request().Header.Set("Authorization", "Bearer the-token")
	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "acc2" || resp["refreshToken"] != "ref2" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Logout_MissingToken(t *testing.T) {
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, refreshToken string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec, e := newTestContext(t, http.MethodPost, "/auth/logout", `{}`)
	if err := h.Logout(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	called := false
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, refreshToken string) error {
			called = true
			if refreshToken != "the-token" {
				t.Fatalf("unexpected token: %s", refreshToken)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec, _ := newTestContext(t, http.MethodPost, "/auth/logout", `{"refreshToken":"the-token"}`)
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
