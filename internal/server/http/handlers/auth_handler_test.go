package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zaeempppp/telegram-booster/internal/domain/errors"
	"github.com/zaeempppp/telegram-booster/internal/test"
)

func newAuthRouter(facade AuthFacade) *gin.Engine {
	router := gin.New()
	h := NewAuthHandler(facade)
	router.POST("/api/user/register", h.Register)
	router.POST("/api/user/login", h.Login)
	return router
}

func TestAuthHandlerRegister(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		registerFn func(context.Context, string, string, string) (string, error)
		want       int
	}{
		{
			name: "success",
			body: `{"email":"a@b.c","password":"pass","username":"zaeem"}`,
			want: http.StatusOK,
		},
		{
			name: "malformed json",
			body: `{"email":`,
			want: http.StatusBadRequest,
		},
		{
			name: "missing fields",
			body: `{"email":"a@b.c"}`,
			want: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			body: `{"email":"a@b.c","password":"pass","username":"zaeem"}`,
			registerFn: func(context.Context, string, string, string) (string, error) {
				return "", domainErrors.ErrInvalidCredentials
			},
			want: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"email":"a@b.c","password":"pass","username":"zaeem"}`,
			registerFn: func(context.Context, string, string, string) (string, error) {
				return "", domainErrors.ErrAlreadyExists
			},
			want: http.StatusConflict,
		},
		{
			name: "internal error",
			body: `{"email":"a@b.c","password":"pass","username":"zaeem"}`,
			registerFn: func(context.Context, string, string, string) (string, error) {
				return "", errors.New("boom")
			},
			want: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthRouter(test.AuthFacadeStub{RegisterFn: tc.registerFn})
			w := performRequest(router, http.MethodPost, "/api/user/register", []byte(tc.body))
			if w.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestAuthHandlerRegisterSetsAuthCookie(t *testing.T) {
	router := newAuthRouter(test.AuthFacadeStub{})
	w := performRequest(router, http.MethodPost, "/api/user/register", []byte(`{"email":"a@b.c","password":"pass","username":"zaeem"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "booster_token=token") {
		t.Fatalf("expected auth cookie, got %q", cookie)
	}
	if got := w.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected bearer header, got %q", got)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		authFn func(context.Context, string, string) (string, error)
		want   int
	}{
		{
			name: "success",
			body: `{"email":"a@b.c","password":"pass"}`,
			want: http.StatusOK,
		},
		{
			name: "malformed json",
			body: `not json`,
			want: http.StatusBadRequest,
		},
		{
			name: "wrong credentials",
			body: `{"email":"a@b.c","password":"bad"}`,
			authFn: func(context.Context, string, string) (string, error) {
				return "", domainErrors.ErrInvalidCredentials
			},
			want: http.StatusUnauthorized,
		},
		{
			name: "internal error",
			body: `{"email":"a@b.c","password":"pass"}`,
			authFn: func(context.Context, string, string) (string, error) {
				return "", errors.New("boom")
			},
			want: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthRouter(test.AuthFacadeStub{AuthenticateFn: tc.authFn})
			w := performRequest(router, http.MethodPost, "/api/user/login", []byte(tc.body))
			if w.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, w.Code)
			}
		})
	}
}
