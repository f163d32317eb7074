package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"green-wheels/internal/auth/jwt"
	"green-wheels/internal/event"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
	userapp "green-wheels/internal/user/app"
	userdomain "green-wheels/internal/user/domain"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()

	db, err := storage.NewDatabase(storage.NewFilePersistence(filepath.Join(t.TempDir(), "db.json")))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	users, err := storage.NewTable[userdomain.User](db, storage.UsersTable)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	log := util.New()
	userService := userapp.NewUserService(users, event.NewBus(log), log)
	tokens := jwt.NewTokenManager("test-secret", time.Minute)
	return NewAuthService(userService, tokens, log)
}

func TestRegisterHashesPassword(t *testing.T) {
	service := newAuthFixture(t)

	id, err := service.Register(userdomain.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	stored, err := service.users.UserByID(id)
	if err != nil {
		t.Fatalf("UserByID: %v", err)
	}
	if stored.Password == "secret" || stored.Password == "" {
		t.Fatal("password stored in clear or empty")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	service := newAuthFixture(t)

	if _, err := service.Register(userdomain.User{Username: "alice", Email: "alice@example.com", Password: "x"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := service.Register(userdomain.User{Username: "alice", Email: "other@example.com", Password: "x"}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate username = %v, want ErrUsernameTaken", err)
	}
	if _, err := service.Register(userdomain.User{Username: "bob", Email: "alice@example.com", Password: "x"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email = %v, want ErrEmailTaken", err)
	}
}

func TestLoginReturnsValidToken(t *testing.T) {
	service := newAuthFixture(t)
	id, _ := service.Register(userdomain.User{Username: "alice", Email: "a@example.com", Password: "secret"})

	token, err := service.Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := service.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != id || claims.Username != "alice" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginFailures(t *testing.T) {
	service := newAuthFixture(t)
	service.Register(userdomain.User{Username: "alice", Email: "a@example.com", Password: "secret"})

	if _, err := service.Login("nobody", "secret"); !errors.Is(err, ErrUnknownUsername) {
		t.Fatalf("unknown username = %v, want ErrUnknownUsername", err)
	}
	if _, err := service.Login("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	service := newAuthFixture(t)

	if _, err := service.Validate("not-a-token"); err == nil {
		t.Fatal("Validate accepted garbage")
	}
}
