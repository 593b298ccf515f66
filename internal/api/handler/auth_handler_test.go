package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// stubIdentityService honors an explicit assertion role the way the real
// resolver does, so these tests catch any handler that forwards one.
type stubIdentityService struct {
	resolved []ports.LoginAssertion
}

func (s *stubIdentityService) Resolve(_ context.Context, a ports.LoginAssertion) (*domain.User, error) {
	s.resolved = append(s.resolved, a)
	role := a.Role
	if role == "" {
		role = domain.RoleUser
	}
	return &domain.User{ID: "usr_1", OpenID: a.OpenID, Name: a.Name, Email: a.Email, Role: role}, nil
}

func (s *stubIdentityService) Me(_ context.Context, openID string) (*domain.User, error) {
	return &domain.User{ID: "usr_1", OpenID: openID, Role: domain.RoleUser}, nil
}

const authTestSecret = "session-test-secret"

func postSession(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth/session", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.CreateSession(e.NewContext(req, rec)); err != nil {
		he, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("unexpected error type: %v", err)
		}
		rec.Code = he.Code
	}
	return rec
}

func tokenRole(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(authTestSecret), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	role, _ := claims["role"].(string)
	return role
}

func TestCreateSession_IssuesUserToken(t *testing.T) {
	svc := &stubIdentityService{}
	h := NewAuthHandler(svc, authTestSecret)

	rec := postSession(t, h, `{"open_id":"oid_1","name":"Alice"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if role := tokenRole(t, rec); role != domain.RoleUser {
		t.Fatalf("expected role user in token, got %q", role)
	}
}

func TestCreateSession_RequestRoleIsIgnored(t *testing.T) {
	svc := &stubIdentityService{}
	h := NewAuthHandler(svc, authTestSecret)

	rec := postSession(t, h, `{"open_id":"total-stranger","role":"admin"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := svc.resolved[0].Role; got != "" {
		t.Fatalf("role from the request body must never reach the resolver, got %q", got)
	}
	if role := tokenRole(t, rec); role == domain.RoleAdmin {
		t.Fatalf("anonymous caller obtained an admin token")
	}
}

func TestCreateSession_EmptyOpenIDRejected(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{}, authTestSecret)

	rec := postSession(t, h, `{"name":"Alice"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
