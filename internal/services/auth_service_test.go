package services_test

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"dealflip/internal/domain"
	"dealflip/internal/repos"
	"dealflip/internal/services"
)

func TestVerifyCredentials(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	users := repos.NewUserRepo(db)
	h, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	err = users.Create(&domain.User{
		ID:       "u-jordan",
		Username: "jordan",
		Hash:     string(h),
		FullName: "Jordan Lee",
		Email:    "jordan@dealflip.test",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	svc := services.NewAuthService(users)

	// Username lookup is case-insensitive.
	u, err := svc.Verify("JORDAN", "s3cret!")
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != "u-jordan" {
		t.Fatalf("wrong user verified: %+v", u)
	}

	if _, err := svc.Verify("jordan", "wrong"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("bad password: want ErrBadCreds, got %v", err)
	}
	if _, err := svc.Verify("nobody", "s3cret!"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("unknown user: want ErrBadCreds, got %v", err)
	}
}

func TestPrincipalIsDemoUser(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := services.NewAuthService(repos.NewUserRepo(db))
	u, err := svc.Principal()
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != repos.DemoUserID || u.Username != "alex" {
		t.Fatalf("unexpected principal: %+v", u)
	}
}
