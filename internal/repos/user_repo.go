package repos

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Get(&u, `
		SELECT id, username, password_hash, full_name, email, avatar_url, created_at
		FROM users WHERE id = ?
	`, id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByUsername(username string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Get(&u, `
		SELECT id, username, password_hash, full_name, email, avatar_url, created_at
		FROM users WHERE LOWER(username) = LOWER(?)
	`, username); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.db.Exec(`
		INSERT INTO users(id, username, password_hash, full_name, email, avatar_url)
		VALUES(?, ?, ?, ?, ?, ?)
	`, u.ID, u.Username, u.Hash, u.FullName, u.Email, u.AvatarURL)
	return err
}
