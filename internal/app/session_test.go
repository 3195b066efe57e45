package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sainath-666/pgstay/internal/app"
	"github.com/sainath-666/pgstay/internal/domain"
)

func TestLogin_RequiredFieldsCheckedBeforeNetwork(t *testing.T) {
	fm := &fakeMarket{}
	s := app.NewSessionService(fm, &fakeCreds{})

	for _, c := range []struct{ user, pass string }{
		{"", "secret"},
		{"   ", "secret"},
		{"user1@example.com", ""},
	} {
		_, err := s.Login(context.Background(), c.user, c.pass)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) || ve.Field != domain.FieldCredentialsRequired {
			t.Fatalf("want credentials_required for %+v, got %v", c, err)
		}
	}
	if fm.loginHits != 0 {
		t.Fatalf("login reached the network: %d", fm.loginHits)
	}
}

func TestLogin_SavesIdentity(t *testing.T) {
	want := domain.Identity{Token: "t1", User: domain.User{ID: "u1", Name: "Ravi", Role: domain.RoleUser}}
	fm := &fakeMarket{loginID: want}
	creds := &fakeCreds{}
	s := app.NewSessionService(fm, creds)

	got, err := s.Login(context.Background(), "user1@example.com", "password123")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != want {
		t.Fatalf("returned identity %+v, want %+v", got, want)
	}
	if creds.id == nil || *creds.id != want {
		t.Fatalf("identity not saved: %+v", creds.id)
	}
}

func TestLogin_FailureDoesNotSave(t *testing.T) {
	fm := &fakeMarket{loginErr: errors.New("invalid credentials")}
	creds := &fakeCreds{}
	s := app.NewSessionService(fm, creds)

	if _, err := s.Login(context.Background(), "user1@example.com", "wrong"); err == nil {
		t.Fatal("expected error")
	}
	if creds.id != nil {
		t.Fatalf("identity saved on failed login: %+v", creds.id)
	}
}

func TestLogoutAndCurrent(t *testing.T) {
	creds := &fakeCreds{}
	s := app.NewSessionService(&fakeMarket{}, creds)

	id, err := s.Current(context.Background())
	if err != nil || id != nil {
		t.Fatalf("want nil identity when logged out, got %v, %v", id, err)
	}

	creds.id = userIdentity()
	if err := s.Logout(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	if creds.id != nil {
		t.Fatalf("logout did not clear credentials")
	}
}
