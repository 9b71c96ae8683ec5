package tools

import (
	"context"
	"fmt"
	"strings"

	"careermcp/internal/gateway"
)

func newSkillGapAnalyzer() gateway.Descriptor {
	return gateway.Descriptor{
		Name:        "skill_gap_analyzer",
		Description: "Analyze skill gaps and provide personalized learning recommendations",
		UseWhen:     "When you want to identify skills you need to develop for career advancement",
		Fields: []gateway.Field{
			{Name: "current_role", Type: gateway.FieldString, Required: true, Description: "Your current job title or role"},
			{Name: "target_role", Type: gateway.FieldString, Required: true, Description: "The role you want to transition to"},
			{Name: "skills", Type: gateway.FieldString, Required: true, Description: "Your current skills (comma-separated)"},
			{Name: "experience", Type: gateway.FieldString, Required: true, Description: "Your experience in the field, e.g. '5 years'"},
		},
		Handler: func(ctx context.Context, args gateway.Args) (string, error) {
			return skillGapReport(args.String("current_role"), args.String("target_role"), args.String("skills"), args.String("experience")), nil
		},
	}
}

func skillGapReport(currentRole, targetRole, skills, experience string) string {
	years := experienceYears(experience)

	var b strings.Builder
	fmt.Fprintf(&b, "# Skill Gap Analysis: %s -> %s\n\n", currentRole, targetRole)

	b.WriteString("## Current Skills Assessment\n")
	fmt.Fprintf(&b, "**Current Role:** %s\n", currentRole)
	fmt.Fprintf(&b, "**Target Role:** %s\n", targetRole)
	fmt.Fprintf(&b, "**Experience Level:** %d years\n\n", years)
	fmt.Fprintf(&b, "**Your Current Skills:** %s\n\n", skills)

	b.WriteString(`## Skill Gap Analysis

### Critical Gaps (Must Have)
1. **Technical Skills:**
   - [Identify missing technical skills]
   - Priority: High
   - Time to acquire: 3-6 months

2. **Domain Knowledge:**
   - [Industry-specific knowledge gaps]
   - Priority: High
   - Time to acquire: 6-12 months

### Important Gaps (Should Have)
1. **Soft Skills:**
   - [Leadership, communication gaps]
   - Priority: Medium
   - Time to acquire: 3-6 months

2. **Tools & Technologies:**
   - [Specific tools needed]
   - Priority: Medium
   - Time to acquire: 1-3 months

### Nice to Have
1. **Certifications:**
   - [Relevant certifications]
   - Priority: Low
   - Time to acquire: 1-2 months

## Personalized Learning Plan

### Phase 1: Foundation (Months 1-3)
**Focus:** Core technical skills
- **Course 1:** [Specific course recommendation]
- **Project 1:** [Hands-on project]
- **Timeline:** 10-15 hours/week

### Phase 2: Specialization (Months 4-6)
**Focus:** Domain-specific knowledge
- **Course 2:** [Advanced course]
- **Project 2:** [Portfolio project]
- **Timeline:** 8-12 hours/week

### Phase 3: Application (Months 7-9)
**Focus:** Real-world application
- **Internship/Volunteer:** [Opportunity type]
- **Networking:** [Industry events]
- **Timeline:** 5-8 hours/week

## Recommended Resources

### Online Courses
- **Platform 1:** [Course recommendations]
- **Platform 2:** [Additional courses]
- **Cost:** $200-500 total

### Books & Reading
- **Book 1:** [Title and author]
- **Book 2:** [Title and author]
- **Industry blogs:** [Specific recommendations]

### Networking & Mentorship
- **Professional groups:** [LinkedIn groups, meetups]
- **Mentorship programs:** [Specific programs]
- **Industry events:** [Conferences, workshops]

## Success Metrics
- **Technical proficiency:** [Specific metrics]
- **Portfolio projects:** [Number and types]
- **Network growth:** [Target connections]
- **Certifications:** [Specific certifications]

## Action Plan
1. **Week 1-2:** Enroll in foundational courses
2. **Month 1:** Complete first project
3. **Month 3:** Apply for relevant certifications
4. **Month 6:** Start networking in target industry
5. **Month 9:** Apply for target role positions
`)

	return b.String()
}
