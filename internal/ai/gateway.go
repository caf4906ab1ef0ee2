package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse marks a provider reply that parsed as JSON but did not
// carry the declared output shape. The gateway fails closed instead of
// forwarding unchecked data.
var ErrMalformedResponse = errors.New("malformed provider response")

const (
	tempAnalysis   = 0.2
	tempPrediction = 0.2
	tempListing    = 0.3
	tempInsights   = 0.4
)

// Gateway builds prompts, calls the provider in JSON mode, and parses the
// reply into typed outputs. No retries, no caching, no deduplication: one
// inbound request is one provider call.
type Gateway struct {
	LLM Completer
}

func NewGateway(llm Completer) *Gateway { return &Gateway{LLM: llm} }

func (g *Gateway) AnalyzeDeal(ctx context.Context, in DealAnalysisInput) (*DealAnalysis, error) {
	var b strings.Builder
	b.WriteString("As an expert in product valuation and reselling, analyze this potential deal:\n\n")
	fmt.Fprintf(&b, "Product: %s\n", in.Title)
	if in.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", in.Description)
	}
	if in.OriginalPrice > 0 {
		fmt.Fprintf(&b, "Original Price: $%g\n", in.OriginalPrice)
	}
	fmt.Fprintf(&b, "Current Price: $%g\n", in.CurrentPrice)
	if in.Condition != "" {
		fmt.Fprintf(&b, "Condition: %s\n", in.Condition)
	}
	if in.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", in.Source)
	}
	b.WriteString(`
Please provide a comprehensive analysis with these components:
1. Estimated fair market value
2. Estimated profit potential if resold
3. Typical resale price range (low and high)
4. Market demand level (high/medium/low)
5. Current market trend
6. Estimated time to sell
7. Recommended selling platforms
8. Best product category and tags
9. Risk assessment
10. Overall confidence score (0-100)
11. Brief summary of opportunity

Respond in JSON format with these fields:
- estimatedValue: number
- estimatedProfit: number
- resellLow: number
- resellHigh: number
- demand: string (high/medium/low)
- marketTrend: string
- sellTimeEstimate: string
- recommendedPlatforms: string[]
- category: string
- tags: string[]
- riskAssessment: string
- confidenceScore: number
- summary: string
`)

	raw, err := g.LLM.Complete(ctx, b.String(), tempAnalysis)
	if err != nil {
		return nil, err
	}
	return parseDealAnalysis(raw)
}

func (g *Gateway) PredictPriceTrend(ctx context.Context, in PricePredictionInput) (*PricePrediction, error) {
	var hist strings.Builder
	if len(in.HistoricalPrices) > 0 {
		hist.WriteString("Historical Prices:\n")
		for _, p := range in.HistoricalPrices {
			fmt.Fprintf(&hist, "- Date: %s, Price: $%g", p.Date, p.Price)
			if p.Source != "" {
				fmt.Fprintf(&hist, ", Source: %s", p.Source)
			}
			hist.WriteString("\n")
		}
	} else {
		hist.WriteString("No historical price data available.\n")
	}

	var b strings.Builder
	b.WriteString("As a market analyst specializing in price projections, predict the price trend for this product:\n\n")
	fmt.Fprintf(&b, "Product: %s\n", in.Title)
	if in.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", in.Category)
	}
	fmt.Fprintf(&b, "Current Price: $%g\n\n", in.CurrentPrice)
	b.WriteString(hist.String())
	b.WriteString(`
Please provide a detailed price prediction with these components:
1. Projected price in 30 days
2. Projected price in 90 days
3. Overall price direction (up/down/stable)
4. Seasonality impact on pricing
5. Confidence level in prediction (0-100)
6. Recommended action (buy/sell/hold)
7. Reasoning behind prediction
8. Best season to resell this product

Respond in JSON format with these fields:
- projectedPrice30Days: number
- projectedPrice90Days: number
- priceDirection: string
- seasonalityFactor: string
- confidenceScore: number
- recommendedAction: string
- reasoning: string
- bestResellSeason: string
`)

	raw, err := g.LLM.Complete(ctx, b.String(), tempPrediction)
	if err != nil {
		return nil, err
	}
	return parsePricePrediction(raw)
}

func (g *Gateway) GenerateMarketInsights(ctx context.Context, categories []string) ([]InsightItem, error) {
	focus := "Provide insights across a diverse range of product categories, especially those popular in resale markets."
	if len(categories) > 0 {
		focus = "Focus on these specific categories: " + strings.Join(categories, ", ")
	}

	prompt := fmt.Sprintf(`As a market intelligence expert, generate current market insights for resellers.

%s

For each insight, include:
1. Title of the trend or insight
2. Brief description explaining the insight
3. Related product category
4. Percentage change (if applicable)
5. Icon type that would represent this insight (trending_up, trending_down, warning, info, etc.)
6. Color type (success, warning, danger, info)
7. Source of information (if applicable)
8. Time period (daily, weekly, monthly)

Provide 7-10 different insights. Respond in JSON format as an object with an
"insights" array whose entries have these fields:
{
  "title": string,
  "description": string,
  "category": string,
  "changePercentage": number,
  "iconType": string,
  "colorType": string,
  "source": string,
  "period": string
}

Ensure insights are data-driven, actionable for resellers, and represent current market conditions.
`, focus)

	raw, err := g.LLM.Complete(ctx, prompt, tempInsights)
	if err != nil {
		return nil, err
	}
	return parseInsights(raw)
}

func (g *Gateway) GenerateListing(ctx context.Context, item ListingItemInput, platform, template string) (*ListingCopy, error) {
	imagesText := "No images are available for this item."
	if n := len(item.Images); n > 0 {
		imagesText = fmt.Sprintf("The item has %d image(s) available.", n)
	}
	templateText := "Create a professional listing from scratch."
	if template != "" {
		templateText = "Use this template as a guide: " + template
	}

	var b strings.Builder
	fmt.Fprintf(&b, "As an expert e-commerce listing writer for %s, create an optimized product listing for this item:\n\n", platform)
	fmt.Fprintf(&b, "Product: %s\n", item.Title)
	if item.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", item.Description)
	}
	if item.Condition != "" {
		fmt.Fprintf(&b, "Condition: %s\n", item.Condition)
	}
	if item.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", item.Category)
	}
	if item.PurchasePrice > 0 {
		fmt.Fprintf(&b, "Purchase Price: $%g\n", item.PurchasePrice)
	}
	if item.EstimatedValue > 0 {
		fmt.Fprintf(&b, "Estimated Value: $%g\n", item.EstimatedValue)
	}
	if len(item.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(item.Tags, ", "))
	}
	b.WriteString(imagesText + "\n\n")
	b.WriteString(templateText + "\n")
	fmt.Fprintf(&b, `
Your listing should include:
1. An attention-grabbing title optimized for %s's search algorithm (max 80 characters)
2. A detailed, well-formatted description highlighting key features, condition, and benefits
3. A suggested selling price based on market value and platform
4. Relevant tags/keywords to maximize visibility

Respond in JSON format with these fields:
- title: string
- description: string
- suggestedPrice: number
- tags: string[]
`, platform)

	raw, err := g.LLM.Complete(ctx, b.String(), tempListing)
	if err != nil {
		return nil, err
	}
	return parseListingCopy(raw)
}
