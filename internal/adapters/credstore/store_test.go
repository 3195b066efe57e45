package credstore_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sainath-666/pgstay/internal/adapters/credstore"
	"github.com/sainath-666/pgstay/internal/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds", "credentials.json")
	s := credstore.New(path)
	ctx := context.Background()

	id, err := s.Identity(ctx)
	if err != nil || id != nil {
		t.Fatalf("fresh store: want nil, nil; got %v, %v", id, err)
	}

	want := domain.Identity{
		Token: "tok-1",
		User:  domain.User{ID: "u1", Name: "Ravi", Phone: "9999999999", Role: domain.RoleUser},
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Identity(ctx)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got == nil || *got != want {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if runtime.GOOS != "windows" {
		st, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if st.Mode().Perm() != 0o600 {
			t.Fatalf("token file perms too open: %v", st.Mode().Perm())
		}
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := credstore.New(path)
	ctx := context.Background()

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}

	if err := s.Save(ctx, domain.Identity{Token: "t", User: domain.User{ID: "u"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}

	id, err := s.Identity(ctx)
	if err != nil || id != nil {
		t.Fatalf("after clear: want nil, nil; got %v, %v", id, err)
	}
}

func TestStore_EmptyTokenMeansLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte(`{"token":"","user":{"id":"u1"}}`), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	s := credstore.New(path)

	id, err := s.Identity(context.Background())
	if err != nil || id != nil {
		t.Fatalf("tokenless file: want nil, nil; got %v, %v", id, err)
	}
}
