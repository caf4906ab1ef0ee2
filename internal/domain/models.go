package domain

import "encoding/json"

// Deal is a sourced resale opportunity tracked by a user.
type Deal struct {
	ID               string  `db:"id" json:"id"`
	UserID           string  `db:"user_id" json:"userId"`
	Title            string  `db:"title" json:"title"`
	Description      string  `db:"description" json:"description,omitempty"`
	Source           string  `db:"source" json:"source,omitempty"`
	PostedTime       string  `db:"posted_time" json:"postedTime,omitempty"`
	ImageURL         string  `db:"image_url" json:"imageUrl,omitempty"`
	OriginalPrice    float64 `db:"original_price" json:"originalPrice"`
	CurrentPrice     float64 `db:"current_price" json:"currentPrice"`
	EstimatedProfit  float64 `db:"estimated_profit" json:"estimatedProfit"`
	Condition        string  `db:"condition" json:"condition,omitempty"`
	SellTimeEstimate string  `db:"sell_time_estimate" json:"sellTimeEstimate,omitempty"`
	Demand           string  `db:"demand" json:"demand,omitempty"`
	MatchScore       int     `db:"match_score" json:"matchScore"`
	IsHotDeal        bool    `db:"is_hot_deal" json:"isHotDeal"`
	Status           string  `db:"status" json:"status"` // active|tracked|purchased|sold|ignored
	AvgResellLow     float64 `db:"avg_resell_low" json:"avgResellLow"`
	AvgResellHigh    float64 `db:"avg_resell_high" json:"avgResellHigh"`
	CreatedAt        string  `db:"created_at" json:"createdAt"`
	UpdatedAt        string  `db:"updated_at" json:"updatedAt"`
}

// InventoryItem is a purchased good held for resale.
type InventoryItem struct {
	ID             string   `db:"id" json:"id"`
	UserID         string   `db:"user_id" json:"userId"`
	DealID         string   `db:"deal_id" json:"dealId,omitempty"`
	Title          string   `db:"title" json:"title"`
	Category       string   `db:"category" json:"category"`
	PurchasePrice  float64  `db:"purchase_price" json:"purchasePrice"`
	PurchaseDate   string   `db:"purchase_date" json:"purchaseDate,omitempty"`
	EstimatedValue float64  `db:"estimated_value" json:"estimatedValue"`
	Condition      string   `db:"condition" json:"condition,omitempty"`
	Status         string   `db:"status" json:"status"` // in_inventory|listed|sold|returned
	TagsJSON       string   `db:"tags_json" json:"-"`
	Tags           []string `db:"-" json:"tags"`
	CreatedAt      string   `db:"created_at" json:"createdAt"`
	UpdatedAt      string   `db:"updated_at" json:"updatedAt"`
}

// SalesRecord closes out an inventory item.
type SalesRecord struct {
	ID              string  `db:"id" json:"id"`
	UserID          string  `db:"user_id" json:"userId"`
	InventoryItemID string  `db:"inventory_item_id" json:"inventoryItemId"`
	Platform        string  `db:"platform" json:"platform,omitempty"`
	SalePrice       float64 `db:"sale_price" json:"salePrice"`
	Fees            float64 `db:"fees" json:"fees"`
	ShippingCost    float64 `db:"shipping_cost" json:"shippingCost"`
	Profit          float64 `db:"profit" json:"profit"`
	SoldAt          string  `db:"sold_at" json:"soldAt,omitempty"`
	CreatedAt       string  `db:"created_at" json:"createdAt"`
}

// CompetitorPrice is an externally observed price point for comparison.
type CompetitorPrice struct {
	ID           string  `db:"id" json:"id"`
	UserID       string  `db:"user_id" json:"userId"`
	DealID       string  `db:"deal_id" json:"dealId,omitempty"`
	ProductTitle string  `db:"product_title" json:"productTitle"`
	Platform     string  `db:"platform" json:"platform"`
	Price        float64 `db:"price" json:"price"`
	URL          string  `db:"url" json:"url,omitempty"`
	ObservedAt   string  `db:"observed_at" json:"observedAt,omitempty"`
	CreatedAt    string  `db:"created_at" json:"createdAt"`
}

// DealAlert is a saved search. Configuration only; nothing executes it.
type DealAlert struct {
	ID           string   `db:"id" json:"id"`
	UserID       string   `db:"user_id" json:"userId"`
	Name         string   `db:"name" json:"name"`
	KeywordsJSON string   `db:"keywords_json" json:"-"`
	Keywords     []string `db:"-" json:"keywords"`
	MinPrice     float64  `db:"min_price" json:"minPrice"`
	MaxPrice     float64  `db:"max_price" json:"maxPrice"`
	Condition    string   `db:"condition" json:"condition,omitempty"`
	SourcesJSON  string   `db:"sources_json" json:"-"`
	Sources      []string `db:"-" json:"sources"`
	NotifyEmail  bool     `db:"notify_email" json:"notifyEmail"`
	NotifyPush   bool     `db:"notify_push" json:"notifyPush"`
	Enabled      bool     `db:"enabled" json:"enabled"`
	CreatedAt    string   `db:"created_at" json:"createdAt"`
	UpdatedAt    string   `db:"updated_at" json:"updatedAt"`
}

type Notification struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"userId"`
	Title       string          `db:"title" json:"title"`
	Body        string          `db:"body" json:"body,omitempty"`
	Type        string          `db:"type" json:"type,omitempty"`
	Read        bool            `db:"read" json:"read"`
	PayloadJSON string          `db:"payload_json" json:"-"`
	Payload     json.RawMessage `db:"-" json:"payload,omitempty"`
	CreatedAt   string          `db:"created_at" json:"createdAt"`
}

type ListingTemplate struct {
	ID        string `db:"id" json:"id"`
	UserID    string `db:"user_id" json:"userId"`
	Name      string `db:"name" json:"name"`
	Platform  string `db:"platform" json:"platform,omitempty"`
	Content   string `db:"content" json:"content"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}

// GeneratedListing is marketplace-ready copy, usually AI-produced.
type GeneratedListing struct {
	ID              string   `db:"id" json:"id"`
	UserID          string   `db:"user_id" json:"userId"`
	InventoryItemID string   `db:"inventory_item_id" json:"inventoryItemId,omitempty"`
	Platform        string   `db:"platform" json:"platform"`
	Title           string   `db:"title" json:"title"`
	Description     string   `db:"description" json:"description,omitempty"`
	SuggestedPrice  float64  `db:"suggested_price" json:"suggestedPrice"`
	TagsJSON        string   `db:"tags_json" json:"-"`
	Tags            []string `db:"-" json:"tags"`
	Published       bool     `db:"published" json:"published"`
	CreatedAt       string   `db:"created_at" json:"createdAt"`
	UpdatedAt       string   `db:"updated_at" json:"updatedAt"`
}

// SourcingSetting holds one row of scan preferences per user.
// Configuration only; nothing executes it.
type SourcingSetting struct {
	UserID         string   `db:"user_id" json:"userId"`
	CategoriesJSON string   `db:"categories_json" json:"-"`
	Categories     []string `db:"-" json:"categories"`
	MinProfit      float64  `db:"min_profit" json:"minProfit"`
	MinMatchScore  int      `db:"min_match_score" json:"minMatchScore"`
	SourcesJSON    string   `db:"sources_json" json:"-"`
	Sources        []string `db:"-" json:"sources"`
	AutoAnalyze    bool     `db:"auto_analyze" json:"autoAnalyze"`
	UpdatedAt      string   `db:"updated_at" json:"updatedAt"`
}

type Stat struct {
	ID         string  `db:"id" json:"id"`
	UserID     string  `db:"user_id" json:"userId"`
	Name       string  `db:"name" json:"name"`
	Value      float64 `db:"value" json:"value"`
	Change     float64 `db:"change" json:"change"`
	ChangeType string  `db:"change_type" json:"changeType,omitempty"`
	Icon       string  `db:"icon" json:"icon,omitempty"`
	CreatedAt  string  `db:"created_at" json:"createdAt"`
}

type MarketInsight struct {
	ID               string  `db:"id" json:"id"`
	Title            string  `db:"title" json:"title"`
	Description      string  `db:"description" json:"description,omitempty"`
	ChangePercentage float64 `db:"change_percentage" json:"changePercentage"`
	IconType         string  `db:"icon_type" json:"iconType"`
	ColorType        string  `db:"color_type" json:"colorType"`
	CreatedAt        string  `db:"created_at" json:"createdAt"`
}

type PricePoint struct {
	ID        string  `db:"id" json:"id"`
	ProductID string  `db:"product_id" json:"productId"`
	Date      string  `db:"date" json:"date"`
	Price     float64 `db:"price" json:"price"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
}
