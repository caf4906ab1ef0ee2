package repos

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

type CompetitorRepo struct{ db *sqlx.DB }

func NewCompetitorRepo(db *sqlx.DB) *CompetitorRepo { return &CompetitorRepo{db: db} }

const competitorColumns = `
	id, user_id, deal_id, product_title, platform, price, url, observed_at, created_at`

func (r *CompetitorRepo) ListByUser(userID string) ([]domain.CompetitorPrice, error) {
	var out []domain.CompetitorPrice
	err := r.db.Select(&out, `
		SELECT `+competitorColumns+` FROM competitor_prices
		WHERE user_id = ?
		ORDER BY datetime(created_at) DESC
	`, userID)
	return out, err
}

func (r *CompetitorRepo) ListByDeal(dealID string) ([]domain.CompetitorPrice, error) {
	var out []domain.CompetitorPrice
	err := r.db.Select(&out, `
		SELECT `+competitorColumns+` FROM competitor_prices
		WHERE deal_id = ?
		ORDER BY price ASC
	`, dealID)
	return out, err
}

func (r *CompetitorRepo) Get(id string) (*domain.CompetitorPrice, error) {
	var cp domain.CompetitorPrice
	if err := r.db.Get(&cp, `SELECT `+competitorColumns+` FROM competitor_prices WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *CompetitorRepo) Create(cp *domain.CompetitorPrice) error {
	_, err := r.db.NamedExec(`
		INSERT INTO competitor_prices(id, user_id, deal_id, product_title, platform, price, url, observed_at)
		VALUES(:id, :user_id, :deal_id, :product_title, :platform, :price, :url, :observed_at)
	`, cp)
	return err
}

func (r *CompetitorRepo) Update(cp *domain.CompetitorPrice) error {
	_, err := r.db.NamedExec(`
		UPDATE competitor_prices SET
		  deal_id = :deal_id, product_title = :product_title, platform = :platform,
		  price = :price, url = :url, observed_at = :observed_at
		WHERE id = :id
	`, cp)
	return err
}

func (r *CompetitorRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM competitor_prices WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
