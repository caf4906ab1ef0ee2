package repos

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

type TemplateRepo struct{ db *sqlx.DB }

func NewTemplateRepo(db *sqlx.DB) *TemplateRepo { return &TemplateRepo{db: db} }

func (r *TemplateRepo) ListByUser(userID string) ([]domain.ListingTemplate, error) {
	var out []domain.ListingTemplate
	err := r.db.Select(&out, `
		SELECT id, user_id, name, platform, content, created_at, updated_at
		FROM listing_templates
		WHERE user_id = ?
		ORDER BY name
	`, userID)
	return out, err
}

func (r *TemplateRepo) Get(id string) (*domain.ListingTemplate, error) {
	var t domain.ListingTemplate
	if err := r.db.Get(&t, `
		SELECT id, user_id, name, platform, content, created_at, updated_at
		FROM listing_templates WHERE id = ?
	`, id); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepo) Create(t *domain.ListingTemplate) error {
	_, err := r.db.NamedExec(`
		INSERT INTO listing_templates(id, user_id, name, platform, content)
		VALUES(:id, :user_id, :name, :platform, :content)
	`, t)
	return err
}

func (r *TemplateRepo) Update(t *domain.ListingTemplate) error {
	_, err := r.db.NamedExec(`
		UPDATE listing_templates SET
		  name = :name, platform = :platform, content = :content,
		  updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`, t)
	return err
}

func (r *TemplateRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM listing_templates WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
