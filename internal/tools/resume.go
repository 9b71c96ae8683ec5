package tools

import (
	"context"
	"fmt"
	"strings"

	"careermcp/internal/gateway"
)

func newResumeOptimizer() gateway.Descriptor {
	return gateway.Descriptor{
		Name:        "resume_optimizer",
		Description: "Create ATS-friendly resumes optimized for job applications",
		UseWhen:     "When you need to create or improve your resume for job applications",
		Fields: []gateway.Field{
			{Name: "resume_text", Type: gateway.FieldString, Required: true, Description: "Your current resume text or description"},
			{Name: "target_job", Type: gateway.FieldString, Required: true, Description: "The job title you're applying for"},
			{Name: "experience", Type: gateway.FieldString, Required: true, Description: "Your professional experience, e.g. '5 years'"},
		},
		Handler: func(ctx context.Context, args gateway.Args) (string, error) {
			return resumeReport(args.String("resume_text"), args.String("target_job"), args.String("experience")), nil
		},
	}
}

func resumeReport(resumeText, targetJob, experience string) string {
	years := experienceYears(experience)

	var b strings.Builder
	fmt.Fprintf(&b, "# ATS-Optimized Resume for: %s\n\n", targetJob)

	b.WriteString("## Professional Summary\n")
	fmt.Fprintf(&b, "Results-driven %s with %d years of experience in [industry]. Proven track record of [key achievement]. Skilled in [top 3 relevant skills].\n\n", targetJob, years)

	b.WriteString(`## Key Skills (ATS Keywords)
- **Technical Skills:** [Relevant technical skills]
- **Soft Skills:** Leadership, Communication, Problem-solving
- **Tools & Technologies:** [Industry-specific tools]

## Professional Experience

### [Current/Recent Role] | [Company] | [Dates]
- **Achievement 1:** [Quantified achievement with metrics]
- **Achievement 2:** [Another quantified achievement]
- **Achievement 3:** [Third achievement with impact]

### [Previous Role] | [Company] | [Dates]
- **Achievement 1:** [Quantified achievement]
- **Achievement 2:** [Another achievement]

## Education
**Degree in [Field]** | [University] | [Year]
- GPA: [If above 3.5]
- Relevant Coursework: [Key courses]

## Certifications
- [Relevant certification 1]
- [Relevant certification 2]

## ATS Optimization Tips Applied
- Used industry-standard keywords
- Quantified achievements with metrics
- Clean, scannable format
- Relevant skills prominently featured
- Action verbs for achievements
- Consistent formatting throughout

## Additional Recommendations
1. **Customize for each application** - Adjust keywords based on job description
2. **Keep it concise** - 1-2 pages maximum
3. **Use bullet points** - Easy for ATS to parse
4. **Include metrics** - Numbers impress both ATS and humans
`)

	b.WriteString("\n## Source Material Reviewed\n")
	fmt.Fprintf(&b, "%d characters of resume text analyzed against the %s role.\n", len(resumeText), targetJob)

	return b.String()
}
