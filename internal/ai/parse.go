package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Decode targets use pointers so a missing field is distinguishable from a
// zero value. Every parse fails closed on absent required fields.

func parseDealAnalysis(raw string) (*DealAnalysis, error) {
	var probe struct {
		EstimatedValue       *float64 `json:"estimatedValue"`
		EstimatedProfit      *float64 `json:"estimatedProfit"`
		ResellLow            *float64 `json:"resellLow"`
		ResellHigh           *float64 `json:"resellHigh"`
		Demand               *string  `json:"demand"`
		MarketTrend          *string  `json:"marketTrend"`
		SellTimeEstimate     *string  `json:"sellTimeEstimate"`
		RecommendedPlatforms []string `json:"recommendedPlatforms"`
		Category             *string  `json:"category"`
		Tags                 []string `json:"tags"`
		RiskAssessment       *string  `json:"riskAssessment"`
		ConfidenceScore      *float64 `json:"confidenceScore"`
		Summary              *string  `json:"summary"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := requireFields(map[string]bool{
		"estimatedValue":  probe.EstimatedValue != nil,
		"estimatedProfit": probe.EstimatedProfit != nil,
		"resellLow":       probe.ResellLow != nil,
		"resellHigh":      probe.ResellHigh != nil,
		"demand":          probe.Demand != nil && *probe.Demand != "",
		"confidenceScore": probe.ConfidenceScore != nil,
		"category":        probe.Category != nil && *probe.Category != "",
		"summary":         probe.Summary != nil && *probe.Summary != "",
	}); err != nil {
		return nil, err
	}
	return &DealAnalysis{
		EstimatedValue:       *probe.EstimatedValue,
		EstimatedProfit:      *probe.EstimatedProfit,
		ResellLow:            *probe.ResellLow,
		ResellHigh:           *probe.ResellHigh,
		Demand:               *probe.Demand,
		MarketTrend:          deref(probe.MarketTrend),
		SellTimeEstimate:     deref(probe.SellTimeEstimate),
		RecommendedPlatforms: emptyIfNil(probe.RecommendedPlatforms),
		Category:             *probe.Category,
		Tags:                 emptyIfNil(probe.Tags),
		RiskAssessment:       deref(probe.RiskAssessment),
		ConfidenceScore:      *probe.ConfidenceScore,
		Summary:              *probe.Summary,
	}, nil
}

func parsePricePrediction(raw string) (*PricePrediction, error) {
	var probe struct {
		ProjectedPrice30Days *float64 `json:"projectedPrice30Days"`
		ProjectedPrice90Days *float64 `json:"projectedPrice90Days"`
		PriceDirection       *string  `json:"priceDirection"`
		SeasonalityFactor    *string  `json:"seasonalityFactor"`
		ConfidenceScore      *float64 `json:"confidenceScore"`
		RecommendedAction    *string  `json:"recommendedAction"`
		Reasoning            *string  `json:"reasoning"`
		BestResellSeason     *string  `json:"bestResellSeason"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := requireFields(map[string]bool{
		"projectedPrice30Days": probe.ProjectedPrice30Days != nil,
		"projectedPrice90Days": probe.ProjectedPrice90Days != nil,
		"priceDirection":       probe.PriceDirection != nil && *probe.PriceDirection != "",
		"confidenceScore":      probe.ConfidenceScore != nil,
		"recommendedAction":    probe.RecommendedAction != nil && *probe.RecommendedAction != "",
	}); err != nil {
		return nil, err
	}
	return &PricePrediction{
		ProjectedPrice30Days: *probe.ProjectedPrice30Days,
		ProjectedPrice90Days: *probe.ProjectedPrice90Days,
		PriceDirection:       *probe.PriceDirection,
		SeasonalityFactor:    deref(probe.SeasonalityFactor),
		ConfidenceScore:      *probe.ConfidenceScore,
		RecommendedAction:    *probe.RecommendedAction,
		Reasoning:            deref(probe.Reasoning),
		BestResellSeason:     deref(probe.BestResellSeason),
	}, nil
}

func parseInsights(raw string) ([]InsightItem, error) {
	// The provider is asked for {"insights": [...]}; tolerate a bare array too.
	var envelope struct {
		Insights []InsightItem `json:"insights"`
	}
	var items []InsightItem
	if err := json.Unmarshal([]byte(raw), &envelope); err == nil && envelope.Insights != nil {
		items = envelope.Insights
	} else {
		var bare []InsightItem
		if err2 := json.Unmarshal([]byte(raw), &bare); err2 != nil {
			return nil, fmt.Errorf("%w: no insights array", ErrMalformedResponse)
		}
		items = bare
	}
	for i, it := range items {
		if it.Title == "" {
			return nil, fmt.Errorf("%w: insight %d missing title", ErrMalformedResponse, i)
		}
		if it.IconType == "" || it.ColorType == "" {
			return nil, fmt.Errorf("%w: insight %d missing icon/color type", ErrMalformedResponse, i)
		}
	}
	return items, nil
}

func parseListingCopy(raw string) (*ListingCopy, error) {
	var probe struct {
		Title          *string  `json:"title"`
		Description    *string  `json:"description"`
		SuggestedPrice *float64 `json:"suggestedPrice"`
		Tags           []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := requireFields(map[string]bool{
		"title":          probe.Title != nil && *probe.Title != "",
		"description":    probe.Description != nil && *probe.Description != "",
		"suggestedPrice": probe.SuggestedPrice != nil,
	}); err != nil {
		return nil, err
	}
	return &ListingCopy{
		Title:          *probe.Title,
		Description:    *probe.Description,
		SuggestedPrice: *probe.SuggestedPrice,
		Tags:           emptyIfNil(probe.Tags),
	}, nil
}

func requireFields(present map[string]bool) error {
	var missing []string
	for name, ok := range present {
		if !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		// Sort-free: a single field name is the common case.
		return fmt.Errorf("%w: missing %s", ErrMalformedResponse, strings.Join(missing, ", "))
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
