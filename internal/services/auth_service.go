package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"dealflip/internal/domain"
	"dealflip/internal/repos"
)

var ErrBadCreds = errors.New("invalid username or password")

// AuthService resolves the acting principal. There is no real session layer:
// the dashboard runs against the seeded demo user, but the resolution goes
// through here so swapping in sessions later touches one place.
type AuthService struct {
	Users *repos.UserRepo
}

func NewAuthService(users *repos.UserRepo) *AuthService { return &AuthService{Users: users} }

// Principal returns the demo user.
func (s *AuthService) Principal() (*domain.User, error) {
	return s.Users.ByID(repos.DemoUserID)
}

// Verify checks a username/password pair against the stored bcrypt hash.
func (s *AuthService) Verify(username, password string) (*domain.User, error) {
	u, err := s.Users.ByUsername(username)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	return u, nil
}
