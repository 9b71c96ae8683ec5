package tools

import (
	"context"
	"fmt"
	"strings"

	"careermcp/internal/gateway"
)

func newSalaryNegotiator() gateway.Descriptor {
	return gateway.Descriptor{
		Name:        "salary_negotiator",
		Description: "Get market-based salary insights and negotiation strategies",
		UseWhen:     "When you need salary negotiation advice or want to understand market compensation",
		Fields: []gateway.Field{
			{Name: "job_title", Type: gateway.FieldString, Required: true, Description: "Your job title or role"},
			{Name: "experience", Type: gateway.FieldString, Required: true, Description: "Your experience in the field, e.g. '5 years'"},
			{Name: "location", Type: gateway.FieldString, Required: true, Description: "Your location or target location"},
			{Name: "current_salary", Type: gateway.FieldString, Required: false, Description: "Your current salary (optional)"},
		},
		Handler: func(ctx context.Context, args gateway.Args) (string, error) {
			return salaryReport(args.String("job_title"), args.String("experience"), args.String("location"), args.String("current_salary")), nil
		},
	}
}

// marketSalary estimates a market midpoint from the experience band, a
// location premium for the highest cost-of-living markets, and a per-year
// experience bonus.
func marketSalary(years int, location string) int {
	base := 100000
	switch {
	case years <= 2:
		base = 50000
	case years <= 5:
		base = 70000
	}

	multiplier := 1.0
	loc := strings.ToLower(location)
	if strings.Contains(loc, "san francisco") || strings.Contains(loc, "new york") {
		multiplier = 1.2
	}

	return int(float64(base)*multiplier) + years*5000
}

func salaryReport(jobTitle, experience, location, currentSalary string) string {
	years := experienceYears(experience)
	market := marketSalary(years, location)

	var b strings.Builder
	fmt.Fprintf(&b, "# Salary Negotiation Guide: %s\n\n", jobTitle)

	b.WriteString("## Market Salary Analysis\n")
	fmt.Fprintf(&b, "**Position:** %s\n", jobTitle)
	fmt.Fprintf(&b, "**Experience:** %d years\n", years)
	fmt.Fprintf(&b, "**Location:** %s\n", location)
	if currentSalary != "" {
		fmt.Fprintf(&b, "**Current Salary:** %s\n", currentSalary)
	}
	fmt.Fprintf(&b, "**Market Range:** %s - %s\n\n", dollars(market-10000), dollars(market+15000))

	b.WriteString("## Salary Breakdown\n")
	fmt.Fprintf(&b, "- **Entry Level (0-2 years):** %s - %s\n", dollars(market-20000), dollars(market-5000))
	fmt.Fprintf(&b, "- **Mid Level (3-5 years):** %s - %s\n", dollars(market-10000), dollars(market+10000))
	fmt.Fprintf(&b, "- **Senior Level (6+ years):** %s - %s\n\n", dollars(market), dollars(market+25000))

	b.WriteString(`## Negotiation Strategy

### 1. Research Phase
- Gather salary data from Glassdoor, LinkedIn, Payscale
- Research company's financial health and pay philosophy
- Understand total compensation (benefits, equity, bonuses)

### 2. Preparation Phase
- Document your achievements and value proposition
- Prepare specific examples of your impact
- Set your target salary (aim 10-15% above market)

### 3. Negotiation Scripts
`)

	b.WriteString("**When asked about salary expectations:**\n")
	fmt.Fprintf(&b, "\"I'm looking for a competitive package that reflects my experience and the value I can bring to the team. Based on my research, the market range for this role is %s to %s. Given my %d years of experience, I'm targeting the higher end of that range.\"\n\n",
		dollars(market-10000), dollars(market+15000), years)

	b.WriteString("**When they make an offer:**\n")
	fmt.Fprintf(&b, "\"Thank you for the offer. I'm excited about the opportunity, but I was hoping for something closer to %s based on my experience and the market value for this role. Is there flexibility in the budget?\"\n\n",
		dollars(market+5000))

	b.WriteString(`## Pro Tips
1. **Never give a number first** - Let them make the first offer
2. **Focus on value** - Emphasize your contributions and impact
3. **Consider total package** - Benefits, equity, and bonuses matter
4. **Practice your pitch** - Rehearse your negotiation points
5. **Be prepared to walk away** - Know your minimum acceptable offer

## When to Negotiate
- **Best times:** Performance reviews, promotions, job changes
- **Avoid:** During company financial difficulties
- **Timing:** After proving your value, not immediately after hiring
`)

	return b.String()
}
