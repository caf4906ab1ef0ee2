package repos

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

type DealRepo struct{ db *sqlx.DB }

func NewDealRepo(db *sqlx.DB) *DealRepo { return &DealRepo{db: db} }

const dealColumns = `
	id, user_id, title, description, source, posted_time, image_url,
	original_price, current_price, estimated_profit, condition,
	sell_time_estimate, demand, match_score, is_hot_deal, status,
	avg_resell_low, avg_resell_high, created_at, updated_at`

func (r *DealRepo) ListAll() ([]domain.Deal, error) {
	var out []domain.Deal
	err := r.db.Select(&out, `SELECT `+dealColumns+` FROM deals ORDER BY datetime(created_at) DESC`)
	return out, err
}

func (r *DealRepo) ListByUser(userID string) ([]domain.Deal, error) {
	var out []domain.Deal
	err := r.db.Select(&out, `
		SELECT `+dealColumns+` FROM deals
		WHERE user_id = ?
		ORDER BY datetime(created_at) DESC
	`, userID)
	return out, err
}

func (r *DealRepo) Get(id string) (*domain.Deal, error) {
	var d domain.Deal
	if err := r.db.Get(&d, `SELECT `+dealColumns+` FROM deals WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DealRepo) Create(d *domain.Deal) error {
	_, err := r.db.NamedExec(`
		INSERT INTO deals(id, user_id, title, description, source, posted_time, image_url,
		  original_price, current_price, estimated_profit, condition, sell_time_estimate,
		  demand, match_score, is_hot_deal, status, avg_resell_low, avg_resell_high)
		VALUES(:id, :user_id, :title, :description, :source, :posted_time, :image_url,
		  :original_price, :current_price, :estimated_profit, :condition, :sell_time_estimate,
		  :demand, :match_score, :is_hot_deal, :status, :avg_resell_low, :avg_resell_high)
	`, d)
	return err
}

// Update rewrites every mutable column and refreshes updated_at. Callers apply
// partial patches onto a freshly-read row before calling this.
func (r *DealRepo) Update(d *domain.Deal) error {
	_, err := r.db.NamedExec(`
		UPDATE deals SET
		  title = :title, description = :description, source = :source,
		  posted_time = :posted_time, image_url = :image_url,
		  original_price = :original_price, current_price = :current_price,
		  estimated_profit = :estimated_profit, condition = :condition,
		  sell_time_estimate = :sell_time_estimate, demand = :demand,
		  match_score = :match_score, is_hot_deal = :is_hot_deal, status = :status,
		  avg_resell_low = :avg_resell_low, avg_resell_high = :avg_resell_high,
		  updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`, d)
	return err
}

func (r *DealRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM deals WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
