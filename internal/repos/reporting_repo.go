package repos

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

// ReportingRepo serves the read-mostly dashboard rows: stats, market insights
// and price history.
type ReportingRepo struct{ db *sqlx.DB }

func NewReportingRepo(db *sqlx.DB) *ReportingRepo { return &ReportingRepo{db: db} }

func (r *ReportingRepo) StatsByUser(userID string) ([]domain.Stat, error) {
	var out []domain.Stat
	err := r.db.Select(&out, `
		SELECT id, user_id, name, value, change, change_type, icon, created_at
		FROM stats
		WHERE user_id = ?
		ORDER BY name
	`, userID)
	return out, err
}

func (r *ReportingRepo) CreateStat(s *domain.Stat) error {
	_, err := r.db.NamedExec(`
		INSERT INTO stats(id, user_id, name, value, change, change_type, icon)
		VALUES(:id, :user_id, :name, :value, :change, :change_type, :icon)
	`, s)
	return err
}

func (r *ReportingRepo) MarketInsights() ([]domain.MarketInsight, error) {
	var out []domain.MarketInsight
	err := r.db.Select(&out, `
		SELECT id, title, description, change_percentage, icon_type, color_type, created_at
		FROM market_insights
		ORDER BY datetime(created_at) DESC
	`)
	return out, err
}

func (r *ReportingRepo) CreateMarketInsight(m *domain.MarketInsight) error {
	_, err := r.db.NamedExec(`
		INSERT INTO market_insights(id, title, description, change_percentage, icon_type, color_type)
		VALUES(:id, :title, :description, :change_percentage, :icon_type, :color_type)
	`, m)
	return err
}

func (r *ReportingRepo) PriceHistory(productID string) ([]domain.PricePoint, error) {
	var out []domain.PricePoint
	err := r.db.Select(&out, `
		SELECT id, product_id, date, price, created_at
		FROM price_history
		WHERE product_id = ?
		ORDER BY date
	`, productID)
	return out, err
}

func (r *ReportingRepo) AddPricePoint(p *domain.PricePoint) error {
	_, err := r.db.NamedExec(`
		INSERT INTO price_history(id, product_id, date, price)
		VALUES(:id, :product_id, :date, :price)
	`, p)
	return err
}
