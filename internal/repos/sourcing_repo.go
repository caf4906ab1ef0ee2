package repos

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/domain"
)

type SourcingRepo struct{ db *sqlx.DB }

func NewSourcingRepo(db *sqlx.DB) *SourcingRepo { return &SourcingRepo{db: db} }

func (r *SourcingRepo) ByUser(userID string) (*domain.SourcingSetting, error) {
	var s domain.SourcingSetting
	if err := r.db.Get(&s, `
		SELECT user_id, categories_json, min_profit, min_match_score, sources_json,
		  auto_analyze, updated_at
		FROM sourcing_settings WHERE user_id = ?
	`, userID); err != nil {
		return nil, err
	}
	s.Categories = decodeList(s.CategoriesJSON)
	s.Sources = decodeList(s.SourcesJSON)
	return &s, nil
}

// Upsert writes the whole settings row; one row per user.
func (r *SourcingRepo) Upsert(s *domain.SourcingSetting) error {
	s.CategoriesJSON = encodeList(s.Categories)
	s.SourcesJSON = encodeList(s.Sources)
	_, err := r.db.NamedExec(`
		INSERT INTO sourcing_settings(user_id, categories_json, min_profit, min_match_score,
		  sources_json, auto_analyze, updated_at)
		VALUES(:user_id, :categories_json, :min_profit, :min_match_score,
		  :sources_json, :auto_analyze, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
		  categories_json = excluded.categories_json,
		  min_profit = excluded.min_profit,
		  min_match_score = excluded.min_match_score,
		  sources_json = excluded.sources_json,
		  auto_analyze = excluded.auto_analyze,
		  updated_at = CURRENT_TIMESTAMP
	`, s)
	return err
}
