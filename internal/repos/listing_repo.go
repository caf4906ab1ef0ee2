package repos

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

type ListingRepo struct{ db *sqlx.DB }

func NewListingRepo(db *sqlx.DB) *ListingRepo { return &ListingRepo{db: db} }

const listingColumns = `
	id, user_id, inventory_item_id, platform, title, description,
	suggested_price, tags_json, published, created_at, updated_at`

func (r *ListingRepo) ListByUser(userID string) ([]domain.GeneratedListing, error) {
	var out []domain.GeneratedListing
	err := r.db.Select(&out, `
		SELECT `+listingColumns+` FROM generated_listings
		WHERE user_id = ?
		ORDER BY datetime(created_at) DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Tags = decodeList(out[i].TagsJSON)
	}
	return out, nil
}

func (r *ListingRepo) Get(id string) (*domain.GeneratedListing, error) {
	var l domain.GeneratedListing
	if err := r.db.Get(&l, `SELECT `+listingColumns+` FROM generated_listings WHERE id = ?`, id); err != nil {
		return nil, err
	}
	l.Tags = decodeList(l.TagsJSON)
	return &l, nil
}

func (r *ListingRepo) Create(l *domain.GeneratedListing) error {
	l.TagsJSON = encodeList(l.Tags)
	_, err := r.db.NamedExec(`
		INSERT INTO generated_listings(id, user_id, inventory_item_id, platform, title,
		  description, suggested_price, tags_json, published)
		VALUES(:id, :user_id, :inventory_item_id, :platform, :title,
		  :description, :suggested_price, :tags_json, :published)
	`, l)
	return err
}

func (r *ListingRepo) Update(l *domain.GeneratedListing) error {
	l.TagsJSON = encodeList(l.Tags)
	_, err := r.db.NamedExec(`
		UPDATE generated_listings SET
		  inventory_item_id = :inventory_item_id, platform = :platform, title = :title,
		  description = :description, suggested_price = :suggested_price,
		  tags_json = :tags_json, published = :published, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`, l)
	return err
}

func (r *ListingRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM generated_listings WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
