package generation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-resume", h.generateResume)
	rg.POST("/generate-cover-letter", h.generateCoverLetter)
}

type generateResumeResponse struct {
	Resume   string `json:"resume"`
	ResumeID string `json:"resumeId"`
}

type generateCoverLetterRequest struct {
	ResumeID       string      `json:"resumeId"`
	JobDescription string      `json:"jobDescription"`
	CompanyInfo    CompanyInfo `json:"companyInfo"`
}

type generateCoverLetterResponse struct {
	CoverLetter string `json:"coverLetter"`
}

func (h *Handler) generateResume(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := middleware.UserIDFromContext(c)
	result, err := h.Svc.GenerateResume(c.Request.Context(), userID, in)
	if err != nil {
		telemetry.Error("generation.resume_failed", telemetry.Fields{
			"request_id": middleware.RequestIDFromContext(c),
			"user_id":    userID,
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "Error generating resume")
		return
	}

	respond.OK(c, generateResumeResponse{
		Resume:   result.Text,
		ResumeID: result.Resume.ID,
	})
}

func (h *Handler) generateCoverLetter(c *gin.Context) {
	var req generateCoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.CompanyInfo.Name) == "" {
		respond.Error(c, http.StatusBadRequest, "Company name is required")
		return
	}

	userID := middleware.UserIDFromContext(c)
	letter, err := h.Svc.GenerateCoverLetter(c.Request.Context(), userID, req.ResumeID, req.JobDescription, req.CompanyInfo)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found")
			return
		}
		telemetry.Error("generation.cover_letter_failed", telemetry.Fields{
			"request_id": middleware.RequestIDFromContext(c),
			"user_id":    userID,
			"resume_id":  req.ResumeID,
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "Error generating cover letter")
		return
	}

	respond.OK(c, generateCoverLetterResponse{CoverLetter: letter})
}
