package repos

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A bare :memory: database is private to its connection; a second pool
	// connection would see an empty schema.
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Demo principal must exist before any seed rows reference it.
	if err := seedDemoUser(db); err != nil {
		return nil, err
	}
	// Dashboard sample rows if the DB is empty.
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  full_name TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  avatar_url TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(LOWER(username));

CREATE TABLE IF NOT EXISTS deals(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  source TEXT NOT NULL DEFAULT '',
  posted_time TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT '',
  original_price NUMERIC NOT NULL DEFAULT 0,
  current_price NUMERIC NOT NULL DEFAULT 0,
  estimated_profit NUMERIC NOT NULL DEFAULT 0,
  condition TEXT NOT NULL DEFAULT '',
  sell_time_estimate TEXT NOT NULL DEFAULT '',
  demand TEXT NOT NULL DEFAULT '',
  match_score INTEGER NOT NULL DEFAULT 0,
  is_hot_deal INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'active'
    CHECK (status IN ('active','tracked','purchased','sold','ignored')),
  avg_resell_low NUMERIC NOT NULL DEFAULT 0,
  avg_resell_high NUMERIC NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_deals_user   ON deals(user_id);
CREATE INDEX IF NOT EXISTS idx_deals_status ON deals(status);

CREATE TABLE IF NOT EXISTS inventory_items(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  deal_id TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  purchase_price NUMERIC NOT NULL DEFAULT 0,
  purchase_date TEXT NOT NULL DEFAULT '',
  estimated_value NUMERIC NOT NULL DEFAULT 0,
  condition TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'in_inventory'
    CHECK (status IN ('in_inventory','listed','sold','returned')),
  tags_json TEXT NOT NULL DEFAULT '[]',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_inventory_user ON inventory_items(user_id);

CREATE TABLE IF NOT EXISTS sales_records(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  inventory_item_id TEXT NOT NULL REFERENCES inventory_items(id) ON DELETE RESTRICT,
  platform TEXT NOT NULL DEFAULT '',
  sale_price NUMERIC NOT NULL,
  fees NUMERIC NOT NULL DEFAULT 0,
  shipping_cost NUMERIC NOT NULL DEFAULT 0,
  profit NUMERIC NOT NULL DEFAULT 0,
  sold_at TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_sales_user ON sales_records(user_id);
CREATE INDEX IF NOT EXISTS idx_sales_item ON sales_records(inventory_item_id);

CREATE TABLE IF NOT EXISTS competitor_prices(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  deal_id TEXT NOT NULL DEFAULT '',
  product_title TEXT NOT NULL DEFAULT '',
  platform TEXT NOT NULL,
  price NUMERIC NOT NULL,
  url TEXT NOT NULL DEFAULT '',
  observed_at TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_competitor_user ON competitor_prices(user_id);
CREATE INDEX IF NOT EXISTS idx_competitor_deal ON competitor_prices(deal_id);

CREATE TABLE IF NOT EXISTS deal_alerts(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  keywords_json TEXT NOT NULL DEFAULT '[]',
  min_price NUMERIC NOT NULL DEFAULT 0,
  max_price NUMERIC NOT NULL DEFAULT 0,
  condition TEXT NOT NULL DEFAULT '',
  sources_json TEXT NOT NULL DEFAULT '[]',
  notify_email INTEGER NOT NULL DEFAULT 0,
  notify_push INTEGER NOT NULL DEFAULT 0,
  enabled INTEGER NOT NULL DEFAULT 1,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_alerts_user ON deal_alerts(user_id);

CREATE TABLE IF NOT EXISTS notifications(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  title TEXT NOT NULL,
  body TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL DEFAULT '',
  read INTEGER NOT NULL DEFAULT 0,
  payload_json TEXT NOT NULL DEFAULT '{}',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id);

CREATE TABLE IF NOT EXISTS listing_templates(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  platform TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_templates_user ON listing_templates(user_id);

CREATE TABLE IF NOT EXISTS generated_listings(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  inventory_item_id TEXT NOT NULL DEFAULT '',
  platform TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  suggested_price NUMERIC NOT NULL DEFAULT 0,
  tags_json TEXT NOT NULL DEFAULT '[]',
  published INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_listings_user ON generated_listings(user_id);

CREATE TABLE IF NOT EXISTS sourcing_settings(
  user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
  categories_json TEXT NOT NULL DEFAULT '[]',
  min_profit NUMERIC NOT NULL DEFAULT 0,
  min_match_score INTEGER NOT NULL DEFAULT 0,
  sources_json TEXT NOT NULL DEFAULT '[]',
  auto_analyze INTEGER NOT NULL DEFAULT 0,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS stats(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  value NUMERIC NOT NULL,
  change NUMERIC NOT NULL DEFAULT 0,
  change_type TEXT NOT NULL DEFAULT '',
  icon TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_stats_user ON stats(user_id);

CREATE TABLE IF NOT EXISTS market_insights(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  change_percentage NUMERIC NOT NULL DEFAULT 0,
  icon_type TEXT NOT NULL,
  color_type TEXT NOT NULL,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS price_history(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  date TEXT NOT NULL,
  price NUMERIC NOT NULL,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_price_history_product ON price_history(product_id);
`
	_, err := db.Exec(schema)
	return err
}

const DemoUserID = "u-demo"

// seedDemoUser ensures the demo principal exists (idempotent).
func seedDemoUser(db *sqlx.DB) error {
	h, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id, username, password_hash, full_name, email, avatar_url)
		VALUES(?, 'alex', ?, 'Alex Smith', 'alex@dealflip.test', '')
		ON CONFLICT(username) DO NOTHING
	`, DemoUserID, string(h))
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM deals`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo deals/inventory/stats/insights")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO deals(id,user_id,title,description,source,posted_time,original_price,current_price,
	    estimated_profit,condition,sell_time_estimate,demand,match_score,is_hot_deal,status,avg_resell_low,avg_resell_high) VALUES
	  ('deal-pegasus', ?, 'Nike Air Zoom Pegasus 38', 'Brand new Nike running shoes in original box',
	    'Facebook Marketplace', '2 hours ago', 130, 65, 45, 'New', '~2-4 days', 'High', 98, 1, 'active', 110, 130),
	  ('deal-mbp16', ?, 'MacBook Pro 2019 (16")', 'MacBook Pro in excellent condition, barely used',
	    'Craigslist', 'yesterday', 1800, 1250, 250, 'Excellent', '~7-10 days', 'Medium', 92, 0, 'active', 1400, 1600),
	  ('deal-chair', ?, 'Mid-Century Designer Chair', 'Authentic mid-century modern chair in good condition',
	    'Offerup', '1 day ago', 350, 120, 180, 'Good', '~14-21 days', 'Moderate', 86, 0, 'active', 280, 350)`,
		DemoUserID, DemoUserID, DemoUserID)

	tx.MustExec(`INSERT INTO inventory_items(id,user_id,title,category,purchase_price,estimated_value,condition,status,tags_json) VALUES
	  ('inv-aj1',   ?, 'Air Jordan 1 Retro High', 'Sneakers',    140, 260, 'New',       'in_inventory', '["nike","jordan","sneakers"]'),
	  ('inv-ipad',  ?, 'iPad Air (4th gen)',      'Electronics', 310, 430, 'Excellent', 'listed',       '["apple","tablet"]'),
	  ('inv-lamp',  ?, 'Brass Desk Lamp',         'Home Goods',  35,  95,  'Good',      'in_inventory', '["vintage","lighting"]'),
	  ('inv-parka', ?, 'North Face Parka',        'Apparel',     60,  150, 'Very Good', 'in_inventory', '["jacket","winter"]')`,
		DemoUserID, DemoUserID, DemoUserID, DemoUserID)

	tx.MustExec(`INSERT INTO stats(id,user_id,name,value,change,change_type,icon) VALUES
	  ('stat-deals',     ?, 'Active Deals',      24,    8.1,  'positive', 'file-text'),
	  ('stat-profit',    ?, 'Profit (30d)',      2856,  12.4, 'positive', 'dollar-sign'),
	  ('stat-inventory', ?, 'Inventory Value',   16520, 3.2,  'negative', 'box'),
	  ('stat-success',   ?, 'Deal Success Rate', 68.4,  5.1,  'positive', 'check-circle')`,
		DemoUserID, DemoUserID, DemoUserID, DemoUserID)

	tx.MustExec(`INSERT INTO market_insights(id,title,description,change_percentage,icon_type,color_type) VALUES
	  ('mi-sneakers',    'Sneaker prices trending up',  '+8.3% in the last 14 days',          8.3,  'trend-up',   'gold'),
	  ('mi-electronics', 'Electronics demand falling',  '-4.1% in the last 14 days',          -4.1, 'trend-down', 'coral'),
	  ('mi-mercari',     'New marketplace detected',    'Mercari gaining traction in your area', 0, 'info',       'teal')`)

	// 31 days of gently declining prices with a sine wobble.
	today := time.Now().UTC()
	for i := 30; i >= 0; i-- {
		d := today.AddDate(0, 0, -i).Format("2006-01-02")
		price := 200 + math.Sin(float64(i)/5)*10 - float64(i)*3
		tx.MustExec(`INSERT INTO price_history(id,product_id,date,price) VALUES(?,?,?,?)`,
			fmt.Sprintf("ph-aj1-%02d", 30-i), "nike-air-jordan-1-retro", d, price)
	}

	return tx.Commit()
}
