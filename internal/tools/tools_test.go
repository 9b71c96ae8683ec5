package tools

import (
	"context"
	"strings"
	"testing"

	"careermcp/internal/auth"
	"careermcp/internal/config"
	"careermcp/internal/gateway"
	"careermcp/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "tools-test-token"

func testConfig() *config.Config {
	return &config.Config{
		AuthToken:   testToken,
		PhoneNumber: "919876543210",
		Host:        config.DefaultHost,
		Port:        config.DefaultPort,
	}
}

func newToolGateway(t *testing.T) *gateway.Gateway {
	t.Helper()
	logger, _ := logging.NewTestLogger()
	g, err := gateway.New(testToken, logger, All(testConfig(), nil))
	require.NoError(t, err)
	return g
}

func authed() context.Context {
	return auth.ContextWithToken(context.Background(), testToken)
}

func TestAllRegistersExpectedTools(t *testing.T) {
	g := newToolGateway(t)

	var names []string
	for _, d := range g.Descriptors() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"validate",
		"job_market_analyzer",
		"resume_optimizer",
		"business_opportunity_finder",
		"salary_negotiator",
		"skill_gap_analyzer",
	}, names)
}

func TestValidateReturnsPhoneNumber(t *testing.T) {
	g := newToolGateway(t)

	text, err := g.Dispatch(authed(), "validate", nil)
	require.NoError(t, err)
	assert.Equal(t, "919876543210", text)
}

func TestSalaryNegotiatorScenario(t *testing.T) {
	g := newToolGateway(t)

	text, err := g.Dispatch(authed(), "salary_negotiator", map[string]interface{}{
		"job_title":  "Software Engineer",
		"experience": "5 years",
		"location":   "Bangalore",
	})
	require.NoError(t, err)
	require.NotEmpty(t, text)

	// Salary-range figures and a negotiation script must be present
	assert.Contains(t, text, "Software Engineer")
	assert.Contains(t, text, "Market Range")
	assert.Regexp(t, `\$\d{1,3}(,\d{3})+`, text, "report must contain salary figures")
	assert.Contains(t, text, "Negotiation Scripts")
	assert.Contains(t, text, "5 years")
}

func TestSalaryNegotiatorLocationPremium(t *testing.T) {
	// 5 years, no premium: base 70000 + 25000 = 95000
	assert.Equal(t, 95000, marketSalary(5, "Bangalore"))
	// 5 years, premium market: 70000*1.2 + 25000 = 109000
	assert.Equal(t, 109000, marketSalary(5, "San Francisco, CA"))
	assert.Equal(t, 109000, marketSalary(5, "New York City"))
	// Entry and senior bands
	assert.Equal(t, 60000, marketSalary(2, "Austin"))
	assert.Equal(t, 150000, marketSalary(10, "Berlin"))
}

func TestJobMarketAnalyzerMissingLocation(t *testing.T) {
	g := newToolGateway(t)

	_, err := g.Dispatch(authed(), "job_market_analyzer", map[string]interface{}{
		"job_title": "Data Scientist",
		"industry":  "Finance",
	})
	require.Error(t, err)
	assert.Equal(t, gateway.KindMissingArgument, gateway.KindOf(err))
	assert.Contains(t, err.Error(), "location", "error must cite the missing field")
}

func TestJobMarketAnalyzerReport(t *testing.T) {
	g := newToolGateway(t)

	text, err := g.Dispatch(authed(), "job_market_analyzer", map[string]interface{}{
		"job_title": "AI Engineer",
		"location":  "Bangalore",
		"industry":  "Technology",
	})
	require.NoError(t, err)
	require.NotEmpty(t, text)

	assert.Contains(t, text, "Job Market Analysis: AI Engineer")
	assert.Contains(t, text, "Bangalore")
	assert.Contains(t, text, "Technology")
	// "engineer" title reads as high demand, "ai" as fast growth
	assert.Contains(t, text, "High")
	assert.Contains(t, text, "15-20% annually")
}

func TestResumeOptimizerReport(t *testing.T) {
	g := newToolGateway(t)

	text, err := g.Dispatch(authed(), "resume_optimizer", map[string]interface{}{
		"resume_text": "Built backend services in Go and operated them in production.",
		"target_job":  "Platform Engineer",
		"experience":  "7 years",
	})
	require.NoError(t, err)
	require.NotEmpty(t, text)

	assert.Contains(t, text, "ATS-Optimized Resume for: Platform Engineer")
	assert.Contains(t, text, "7 years of experience")
}

func TestBusinessOpportunityFinderReport(t *testing.T) {
	g := newToolGateway(t)

	tests := []struct {
		investmentRange string
		wantTier        string
	}{
		{"low", "$5K-15K"},
		{"medium", "$20K-50K"},
		{"high", "$100K+"},
		{"unrecognized", "$20K-50K"}, // falls back to medium
	}

	for _, tt := range tests {
		t.Run(tt.investmentRange, func(t *testing.T) {
			text, err := g.Dispatch(authed(), "business_opportunity_finder", map[string]interface{}{
				"industry":         "Healthcare",
				"location":         "Mumbai",
				"investment_range": tt.investmentRange,
			})
			require.NoError(t, err)
			assert.Contains(t, text, "Business Opportunity Analysis: Healthcare")
			assert.Contains(t, text, tt.wantTier)
		})
	}
}

func TestSkillGapAnalyzerReport(t *testing.T) {
	g := newToolGateway(t)

	text, err := g.Dispatch(authed(), "skill_gap_analyzer", map[string]interface{}{
		"current_role": "QA Engineer",
		"target_role":  "SRE",
		"skills":       "Selenium, Python, SQL",
		"experience":   "4 years",
	})
	require.NoError(t, err)
	require.NotEmpty(t, text)

	assert.Contains(t, text, "Skill Gap Analysis: QA Engineer -> SRE")
	assert.Contains(t, text, "Selenium, Python, SQL")
	assert.Contains(t, text, "Personalized Learning Plan")
	assert.Contains(t, text, "4 years")
}

func TestToolsRejectWrongToken(t *testing.T) {
	g := newToolGateway(t)

	ctx := auth.ContextWithToken(context.Background(), "not-the-token")
	for _, d := range g.Descriptors() {
		_, err := g.Dispatch(ctx, d.Name, map[string]interface{}{})
		require.Error(t, err, "tool %s must reject a bad token", d.Name)
		assert.Equal(t, gateway.KindUnauthorized, gateway.KindOf(err))
	}
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"5 years", 5},
		{"10 yrs", 10},
		{"about 3 years in fintech", 3},
		{"fresh graduate", 2},
		{"", 2},
		{"0 years", 0},
	}
	for _, tt := range tests {
		if got := experienceYears(tt.in); got != tt.want {
			t.Errorf("experienceYears(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDollars(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{95000, "$95,000"},
		{1234567, "$1,234,567"},
		{-5000, "-$5,000"},
	}
	for _, tt := range tests {
		if got := dollars(tt.in); got != tt.want {
			t.Errorf("dollars(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReportsAreNonEmptyForAllTools(t *testing.T) {
	g := newToolGateway(t)

	calls := map[string]map[string]interface{}{
		"validate": nil,
		"job_market_analyzer": {
			"job_title": "Designer", "location": "Remote", "industry": "Media",
		},
		"resume_optimizer": {
			"resume_text": "text", "target_job": "Designer", "experience": "2 years",
		},
		"business_opportunity_finder": {
			"industry": "Retail", "location": "Delhi", "investment_range": "low",
		},
		"salary_negotiator": {
			"job_title": "Designer", "experience": "2 years", "location": "Delhi",
		},
		"skill_gap_analyzer": {
			"current_role": "Designer", "target_role": "Art Director",
			"skills": "Figma", "experience": "2 years",
		},
	}

	for name, args := range calls {
		text, err := g.Dispatch(authed(), name, args)
		require.NoError(t, err, "tool %s", name)
		assert.NotEmpty(t, strings.TrimSpace(text), "tool %s", name)
	}
}
