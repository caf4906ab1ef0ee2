package repos

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

type NotificationRepo struct{ db *sqlx.DB }

func NewNotificationRepo(db *sqlx.DB) *NotificationRepo { return &NotificationRepo{db: db} }

const notificationColumns = `
	id, user_id, title, body, type, read, payload_json, created_at`

func (r *NotificationRepo) ListByUser(userID string) ([]domain.Notification, error) {
	var out []domain.Notification
	err := r.db.Select(&out, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE user_id = ?
		ORDER BY datetime(created_at) DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Payload = json.RawMessage(out[i].PayloadJSON)
	}
	return out, nil
}

func (r *NotificationRepo) Get(id string) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.Get(&n, `SELECT `+notificationColumns+` FROM notifications WHERE id = ?`, id); err != nil {
		return nil, err
	}
	n.Payload = json.RawMessage(n.PayloadJSON)
	return &n, nil
}

func (r *NotificationRepo) Create(n *domain.Notification) error {
	if n.PayloadJSON == "" {
		n.PayloadJSON = "{}"
	}
	_, err := r.db.NamedExec(`
		INSERT INTO notifications(id, user_id, title, body, type, read, payload_json)
		VALUES(:id, :user_id, :title, :body, :type, :read, :payload_json)
	`, n)
	return err
}

func (r *NotificationRepo) Update(n *domain.Notification) error {
	_, err := r.db.NamedExec(`
		UPDATE notifications SET
		  title = :title, body = :body, type = :type, read = :read, payload_json = :payload_json
		WHERE id = :id
	`, n)
	return err
}

// MarkRead flips only the read flag.
func (r *NotificationRepo) MarkRead(id string) (bool, error) {
	res, err := r.db.Exec(`UPDATE notifications SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *NotificationRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM notifications WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
