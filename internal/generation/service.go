package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/llm"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
)

const (
	resumeMaxTokens      = 1500
	coverLetterMaxTokens = 1000
	temperature          = 0.7
)

// Input is the structured form data a resume is generated from.
type Input struct {
	PersonalInfo   resumes.PersonalInfo `json:"personalInfo"`
	Experience     []resumes.Experience `json:"experience"`
	Education      []resumes.Education  `json:"education"`
	Skills         []string             `json:"skills"`
	JobDescription string               `json:"jobDescription"`
}

// CompanyInfo describes the cover letter's target company.
type CompanyInfo struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	HiringManager string `json:"hiringManager"`
	Position      string `json:"position"`
}

// GeneratedResume pairs the full generated text with the persisted record.
type GeneratedResume struct {
	Text   string
	Resume resumes.Resume
}

// Service builds prompts, calls the completion provider, and persists results.
type Service struct {
	LLM     llm.Completer
	Resumes resumes.Repo
}

func NewService(completer llm.Completer, repo resumes.Repo) *Service {
	return &Service{LLM: completer, Resumes: repo}
}

// GenerateResume produces a resume from the structured input. The record is
// persisted only after the completion succeeds, so a provider failure leaves
// nothing behind. The stored summary is extracted from the generated text;
// extraction misses are non-fatal.
func (s *Service) GenerateResume(ctx context.Context, userID string, in Input) (GeneratedResume, error) {
	metrics.IncGenerationStarted()
	start := time.Now()

	prompt := buildResumePrompt(in)
	text, err := s.LLM.Complete(ctx, prompt, resumeMaxTokens, temperature)
	if err != nil {
		metrics.IncGenerationFailed()
		return GeneratedResume{}, fmt.Errorf("complete resume: %w", err)
	}
	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(metrics.SinceMillis(start))

	summary, _ := ExtractSection(text, "Summary")

	resume := resumes.Resume{
		ID:             uuid.NewString(),
		UserID:         userID,
		PersonalInfo:   in.PersonalInfo,
		Summary:        summary,
		Experience:     in.Experience,
		Education:      in.Education,
		Skills:         in.Skills,
		Projects:       []resumes.Project{},
		Certifications: []resumes.Certification{},
		JobDescription: in.JobDescription,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Resumes.Create(ctx, resume); err != nil {
		return GeneratedResume{}, fmt.Errorf("store resume: %w", err)
	}

	return GeneratedResume{Text: text, Resume: resume}, nil
}

// GenerateCoverLetter produces a cover letter from a saved resume. A resume
// that does not exist and one owned by another user are indistinguishable to
// the caller. Nothing is persisted.
func (s *Service) GenerateCoverLetter(ctx context.Context, userID, resumeID, jobDescription string, company CompanyInfo) (string, error) {
	resume, err := s.Resumes.GetByID(ctx, resumeID)
	if err != nil {
		return "", err
	}
	if resume.UserID != userID {
		return "", resumes.ErrNotFound
	}

	metrics.IncGenerationStarted()
	start := time.Now()

	prompt := buildCoverLetterPrompt(resume, jobDescription, company)
	text, err := s.LLM.Complete(ctx, prompt, coverLetterMaxTokens, temperature)
	if err != nil {
		metrics.IncGenerationFailed()
		return "", fmt.Errorf("complete cover letter: %w", err)
	}
	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(metrics.SinceMillis(start))
	return text, nil
}
