package repos

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

type InventoryRepo struct{ db *sqlx.DB }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{db: db} }

const inventoryColumns = `
	id, user_id, deal_id, title, category, purchase_price, purchase_date,
	estimated_value, condition, status, tags_json, created_at, updated_at`

func (r *InventoryRepo) ListByUser(userID string) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := r.db.Select(&out, `
		SELECT `+inventoryColumns+` FROM inventory_items
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

func (r *InventoryRepo) Get(id string) (*domain.InventoryItem, error) {
	var it domain.InventoryItem
	if err := r.db.Get(&it, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = ?`, id); err != nil {
		return nil, err
	}
	it.Tags = decodeList(it.TagsJSON)
	return &it, nil
}

func (r *InventoryRepo) Create(it *domain.InventoryItem) error {
	it.TagsJSON = encodeList(it.Tags)
	_, err := r.db.NamedExec(`
		INSERT INTO inventory_items(id, user_id, deal_id, title, category, purchase_price,
		  purchase_date, estimated_value, condition, status, tags_json)
		VALUES(:id, :user_id, :deal_id, :title, :category, :purchase_price,
		  :purchase_date, :estimated_value, :condition, :status, :tags_json)
	`, it)
	return err
}

func (r *InventoryRepo) Update(it *domain.InventoryItem) error {
	it.TagsJSON = encodeList(it.Tags)
	_, err := r.db.NamedExec(`
		UPDATE inventory_items SET
		  deal_id = :deal_id, title = :title, category = :category,
		  purchase_price = :purchase_price, purchase_date = :purchase_date,
		  estimated_value = :estimated_value, condition = :condition,
		  status = :status, tags_json = :tags_json, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`, it)
	return err
}

func (r *InventoryRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM inventory_items WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// MarkStatusTx flips an item's status inside an open transaction. Used by the
// sale-recording flow so the sales row and the flip commit together.
func (r *InventoryRepo) MarkStatusTx(tx *sqlx.Tx, id, status string) (bool, error) {
	res, err := tx.Exec(`
		UPDATE inventory_items SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, status, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
