// Package tools declares the career and business intelligence tool
// descriptors served by the gateway: five report generators plus the
// validate identity tool the connecting agent requires.
//
// Each tool is a prompt/response wrapper: it fills a markdown report
// template from its arguments, optionally enriched with live data from
// the insights API when one is configured.
package tools

import (
	"regexp"
	"strconv"
	"strings"

	"careermcp/internal/config"
	"careermcp/internal/gateway"
	"careermcp/internal/upstream"
)

// All returns the full descriptor table, built once at startup. The
// insights client may be nil; tools then rely on their built-in analysis.
func All(cfg *config.Config, insights *upstream.Client) []gateway.Descriptor {
	return []gateway.Descriptor{
		newValidate(cfg),
		newJobMarketAnalyzer(insights),
		newResumeOptimizer(),
		newBusinessOpportunityFinder(insights),
		newSalaryNegotiator(),
		newSkillGapAnalyzer(),
	}
}

var yearsRe = regexp.MustCompile(`\d+`)

// experienceYears extracts the leading number of years from a free-text
// experience value like "5 years" or "about 3 yrs". Values without a
// number fall back to 2 years, the original service's default.
func experienceYears(experience string) int {
	m := yearsRe.FindString(experience)
	if m == "" {
		return 2
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 2
	}
	return n
}

// dollars formats n as a dollar amount with thousands separators.
func dollars(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
