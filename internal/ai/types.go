package ai

// DealAnalysisInput describes a candidate buy.
type DealAnalysisInput struct {
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	CurrentPrice  float64 `json:"currentPrice"`
	Condition     string  `json:"condition,omitempty"`
	Source        string  `json:"source,omitempty"`
}

type DealAnalysis struct {
	EstimatedValue       float64  `json:"estimatedValue"`
	EstimatedProfit      float64  `json:"estimatedProfit"`
	ResellLow            float64  `json:"resellLow"`
	ResellHigh           float64  `json:"resellHigh"`
	Demand               string   `json:"demand"` // high|medium|low
	MarketTrend          string   `json:"marketTrend"`
	SellTimeEstimate     string   `json:"sellTimeEstimate"`
	RecommendedPlatforms []string `json:"recommendedPlatforms"`
	Category             string   `json:"category"`
	Tags                 []string `json:"tags"`
	RiskAssessment       string   `json:"riskAssessment"`
	ConfidenceScore      float64  `json:"confidenceScore"`
	Summary              string   `json:"summary"`
}

type HistoricalPrice struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Source string  `json:"source,omitempty"`
}

type PricePredictionInput struct {
	Title            string            `json:"title"`
	Category         string            `json:"category,omitempty"`
	CurrentPrice     float64           `json:"currentPrice"`
	HistoricalPrices []HistoricalPrice `json:"historicalPrices,omitempty"`
}

type PricePrediction struct {
	ProjectedPrice30Days float64 `json:"projectedPrice30Days"`
	ProjectedPrice90Days float64 `json:"projectedPrice90Days"`
	PriceDirection       string  `json:"priceDirection"` // up|down|stable
	SeasonalityFactor    string  `json:"seasonalityFactor"`
	ConfidenceScore      float64 `json:"confidenceScore"`
	RecommendedAction    string  `json:"recommendedAction"` // buy|sell|hold
	Reasoning            string  `json:"reasoning"`
	BestResellSeason     string  `json:"bestResellSeason"`
}

type InsightItem struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	ChangePercentage float64 `json:"changePercentage"`
	IconType         string  `json:"iconType"`
	ColorType        string  `json:"colorType"`
	Source           string  `json:"source"`
	Period           string  `json:"period"`
}

// ListingItemInput carries the inventory attributes fed to the listing writer.
type ListingItemInput struct {
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Condition      string   `json:"condition,omitempty"`
	Category       string   `json:"category,omitempty"`
	PurchasePrice  float64  `json:"purchasePrice,omitempty"`
	EstimatedValue float64  `json:"estimatedValue,omitempty"`
	Images         []string `json:"images,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

type ListingCopy struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SuggestedPrice float64  `json:"suggestedPrice"`
	Tags           []string `json:"tags"`
}
