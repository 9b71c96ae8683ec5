package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"careermcp/internal/gateway"
	"careermcp/internal/upstream"
)

func newBusinessOpportunityFinder(insights *upstream.Client) gateway.Descriptor {
	return gateway.Descriptor{
		Name:        "business_opportunity_finder",
		Description: "Find market gaps and business opportunities",
		UseWhen:     "When you want to identify untapped market opportunities or business ideas",
		Fields: []gateway.Field{
			{Name: "industry", Type: gateway.FieldString, Required: true, Description: "Industry or sector to analyze"},
			{Name: "location", Type: gateway.FieldString, Required: true, Description: "Geographic location for opportunity analysis"},
			{Name: "investment_range", Type: gateway.FieldString, Required: true, Description: "Investment range: 'low', 'medium', or 'high'"},
		},
		Handler: func(ctx context.Context, args gateway.Args) (string, error) {
			return businessReport(ctx, insights, args.String("industry"), args.String("location"), args.String("investment_range"))
		},
	}
}

// investmentTier selects a required-investment band per opportunity type.
func investmentTier(investmentRange, low, medium, high string) string {
	switch strings.ToLower(strings.TrimSpace(investmentRange)) {
	case "low":
		return low
	case "high":
		return high
	default:
		return medium
	}
}

func businessReport(ctx context.Context, insights *upstream.Client, industry, location, investmentRange string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Business Opportunity Analysis: %s\n\n", industry)

	b.WriteString("## Market Analysis\n")
	fmt.Fprintf(&b, "**Industry:** %s\n", industry)
	fmt.Fprintf(&b, "**Location:** %s\n", location)
	fmt.Fprintf(&b, "**Investment Level:** %s\n", titleCase(investmentRange))
	fmt.Fprintf(&b, "**Analysis Date:** %s\n\n", time.Now().Format("January 2, 2006"))

	if insights != nil {
		snap, err := insights.MarketSnapshot(ctx, industry, location)
		if err != nil {
			return "", gateway.Wrap(gateway.KindUpstream, err, "market insights lookup failed: %v", err)
		}
		b.WriteString("## Live Market Snapshot\n")
		b.WriteString(snap.Summary)
		b.WriteString("\n\n")
	}

	b.WriteString("## Identified Opportunities\n\n")

	b.WriteString("### 1. Digital Transformation Services\n")
	b.WriteString("- **Market Gap:** Small businesses struggling with digital adoption\n")
	b.WriteString("- **Opportunity:** Provide affordable digital transformation consulting\n")
	fmt.Fprintf(&b, "- **Investment Required:** $%s\n", investmentTier(investmentRange, "5K-15K", "20K-50K", "100K+"))
	b.WriteString("- **Potential Revenue:** $50K-200K annually\n\n")

	b.WriteString("### 2. AI-Powered Solutions\n")
	b.WriteString("- **Market Gap:** Manual processes that can be automated\n")
	b.WriteString("- **Opportunity:** Develop AI tools for specific industry needs\n")
	fmt.Fprintf(&b, "- **Investment Required:** $%s\n", investmentTier(investmentRange, "10K-25K", "30K-75K", "150K+"))
	b.WriteString("- **Potential Revenue:** $100K-500K annually\n\n")

	b.WriteString("### 3. Sustainability Services\n")
	b.WriteString("- **Market Gap:** Growing demand for eco-friendly solutions\n")
	b.WriteString("- **Opportunity:** Green consulting or sustainable product development\n")
	fmt.Fprintf(&b, "- **Investment Required:** $%s\n", investmentTier(investmentRange, "3K-10K", "15K-40K", "80K+"))
	b.WriteString("- **Potential Revenue:** $30K-150K annually\n\n")

	b.WriteString(`## Market Trends Supporting Opportunities
- **Digital Adoption:** 78% of businesses plan to increase digital investment
- **AI Integration:** 65% of companies are implementing AI solutions
- **Sustainability:** 82% of consumers prefer sustainable brands

## Next Steps
1. **Validate demand** through customer interviews
2. **Create MVP** to test market response
3. **Build partnerships** with complementary businesses
4. **Develop marketing strategy** for target audience
`)

	return b.String(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
