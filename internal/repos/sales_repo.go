package repos

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

type SalesRepo struct{ db *sqlx.DB }

func NewSalesRepo(db *sqlx.DB) *SalesRepo { return &SalesRepo{db: db} }

func (r *SalesRepo) DB() *sqlx.DB { return r.db }

const salesColumns = `
	id, user_id, inventory_item_id, platform, sale_price, fees,
	shipping_cost, profit, sold_at, created_at`

func (r *SalesRepo) ListByUser(userID string) ([]domain.SalesRecord, error) {
	var out []domain.SalesRecord
	err := r.db.Select(&out, `
		SELECT `+salesColumns+` FROM sales_records
		WHERE user_id = ?
		ORDER BY datetime(created_at) DESC
	`, userID)
	return out, err
}

func (r *SalesRepo) Get(id string) (*domain.SalesRecord, error) {
	var s domain.SalesRecord
	if err := r.db.Get(&s, `SELECT `+salesColumns+` FROM sales_records WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SalesRepo) CreateTx(tx *sqlx.Tx, s *domain.SalesRecord) error {
	_, err := tx.NamedExec(`
		INSERT INTO sales_records(id, user_id, inventory_item_id, platform, sale_price,
		  fees, shipping_cost, profit, sold_at)
		VALUES(:id, :user_id, :inventory_item_id, :platform, :sale_price,
		  :fees, :shipping_cost, :profit, :sold_at)
	`, s)
	return err
}

func (r *SalesRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM sales_records WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
