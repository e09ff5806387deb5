package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/zaeempppp/telegram-booster/internal/domain/errors"
	"github.com/zaeempppp/telegram-booster/internal/domain/model"
	pkgAuth "github.com/zaeempppp/telegram-booster/internal/pkg/auth"
)

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hash:" + password, nil }
func (stubHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type stubStrategy struct{}

func (stubStrategy) IssueToken(userID int64) (string, error) { return "token", nil }
func (stubStrategy) ParseToken(token string) (int64, error) {
	if token != "token" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return 1, nil
}
func (stubStrategy) Name() string { return "stub" }

func TestAuthUseCaseRegisterRejectsEmptyFields(t *testing.T) {
	uc := NewAuthUseCase(stubUserRepository{}, stubHasher{}, stubStrategy{})

	cases := [][3]string{
		{"", "pass", "name"},
		{"a@b.c", "", "name"},
		{"a@b.c", "pass", ""},
	}
	for _, c := range cases {
		if _, _, err := uc.Register(context.Background(), c[0], c[1], c[2]); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %v, got %v", c, err)
		}
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	users := stubUserRepository{
		createFn: func(ctx context.Context, email, username, hash string) (*model.User, error) {
			if email != "a@b.c" || username != "zaeem" || hash != "hash:pass" {
				t.Fatalf("unexpected arguments: %s %s %s", email, username, hash)
			}
			return &model.User{ID: 1, Email: email, Username: username, Role: model.RoleUser}, nil
		},
	}
	uc := NewAuthUseCase(users, stubHasher{}, stubStrategy{})

	usr, token, err := uc.Register(context.Background(), "A@B.C", "pass", " zaeem ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.Role != model.RoleUser {
		t.Fatalf("new accounts must start as regular users, got %s", usr.Role)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	users := stubUserRepository{
		createFn: func(context.Context, string, string, string) (*model.User, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	}
	uc := NewAuthUseCase(users, stubHasher{}, stubStrategy{})

	if _, _, err := uc.Register(context.Background(), "a@b.c", "pass", "zaeem"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	users := stubUserRepository{
		getByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			if email != "a@b.c" {
				return nil, domainErrors.ErrNotFound
			}
			return &model.User{ID: 1, Email: email, PasswordHash: "hash:pass"}, nil
		},
	}
	uc := NewAuthUseCase(users, stubHasher{}, stubStrategy{})

	if _, token, err := uc.Authenticate(context.Background(), "a@b.c", "pass"); err != nil || token != "token" {
		t.Fatalf("expected successful login, got token %q err %v", token, err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "a@b.c", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "missing@b.c", "pass"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(stubUserRepository{}, stubHasher{}, stubStrategy{})

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
	if id, err := uc.ParseToken("token"); err != nil || id != 1 {
		t.Fatalf("expected user 1, got %d err %v", id, err)
	}
}
