package repos

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

type AlertRepo struct{ db *sqlx.DB }

func NewAlertRepo(db *sqlx.DB) *AlertRepo { return &AlertRepo{db: db} }

const alertColumns = `
	id, user_id, name, keywords_json, min_price, max_price, condition,
	sources_json, notify_email, notify_push, enabled, created_at, updated_at`

func (r *AlertRepo) ListByUser(userID string) ([]domain.DealAlert, error) {
	var out []domain.DealAlert
	err := r.db.Select(&out, `
		SELECT `+alertColumns+` FROM deal_alerts
		WHERE user_id = ?
		ORDER BY datetime(created_at) DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Keywords = decodeList(out[i].KeywordsJSON)
		out[i].Sources = decodeList(out[i].SourcesJSON)
	}
	return out, nil
}

func (r *AlertRepo) Get(id string) (*domain.DealAlert, error) {
	var a domain.DealAlert
	if err := r.db.Get(&a, `SELECT `+alertColumns+` FROM deal_alerts WHERE id = ?`, id); err != nil {
		return nil, err
	}
	a.Keywords = decodeList(a.KeywordsJSON)
	a.Sources = decodeList(a.SourcesJSON)
	return &a, nil
}

func (r *AlertRepo) Create(a *domain.DealAlert) error {
	a.KeywordsJSON = encodeList(a.Keywords)
	a.SourcesJSON = encodeList(a.Sources)
	_, err := r.db.NamedExec(`
		INSERT INTO deal_alerts(id, user_id, name, keywords_json, min_price, max_price,
		  condition, sources_json, notify_email, notify_push, enabled)
		VALUES(:id, :user_id, :name, :keywords_json, :min_price, :max_price,
		  :condition, :sources_json, :notify_email, :notify_push, :enabled)
	`, a)
	return err
}

func (r *AlertRepo) Update(a *domain.DealAlert) error {
	a.KeywordsJSON = encodeList(a.Keywords)
	a.SourcesJSON = encodeList(a.Sources)
	_, err := r.db.NamedExec(`
		UPDATE deal_alerts SET
		  name = :name, keywords_json = :keywords_json, min_price = :min_price,
		  max_price = :max_price, condition = :condition, sources_json = :sources_json,
		  notify_email = :notify_email, notify_push = :notify_push, enabled = :enabled,
		  updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`, a)
	return err
}

func (r *AlertRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM deal_alerts WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
