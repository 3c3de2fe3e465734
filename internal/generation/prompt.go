package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"resume-builder/internal/resumes"
)

// buildResumePrompt serializes the structured form data into a natural-language
// instruction for the completion service.
func buildResumePrompt(in Input) string {
	var b strings.Builder
	b.WriteString("Create a professional resume based on the following information:\n\n")
	fmt.Fprintf(&b, "Personal Information: %s\n", jsonBlock(in.PersonalInfo))
	fmt.Fprintf(&b, "Experience: %s\n", jsonBlock(in.Experience))
	fmt.Fprintf(&b, "Education: %s\n", jsonBlock(in.Education))
	fmt.Fprintf(&b, "Skills: %s\n\n", jsonBlock(in.Skills))
	fmt.Fprintf(&b, "The resume should be optimized for this job description: %s\n\n", in.JobDescription)
	b.WriteString("Format the resume with appropriate sections (Summary, Experience, Education, Skills) ")
	b.WriteString("and use professional language with quantifiable achievements where possible.")
	return b.String()
}

// buildCoverLetterPrompt names the candidate and target company, enumerates the
// saved resume's experience, education and skills, and asks for a tailored letter.
func buildCoverLetterPrompt(resume resumes.Resume, jobDescription string, company CompanyInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a compelling cover letter for %s applying to %s for a position described as:\n%s\n\n",
		resume.PersonalInfo.Name, company.Name, jobDescription)

	b.WriteString("The candidate's relevant experience includes:\n")
	for _, exp := range resume.Experience {
		fmt.Fprintf(&b, "%s at %s: %s\n", exp.Title, exp.Company, exp.Description)
	}

	b.WriteString("\nTheir education background:\n")
	for _, edu := range resume.Education {
		fmt.Fprintf(&b, "%s from %s\n", edu.Degree, edu.Institution)
	}

	fmt.Fprintf(&b, "\nKey skills: %s\n\n", strings.Join(resume.Skills, ", "))
	b.WriteString("The cover letter should be professional, tailored to the job, and highlight relevant qualifications.")
	return b.String()
}

func jsonBlock(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
