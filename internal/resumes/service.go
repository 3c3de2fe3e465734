package resumes

import (
	"context"
	"errors"
	"strings"
)

// Service exposes owner-scoped reads over the resume store.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// ListByOwner returns the user's resumes newest-first. An owner with no
// resumes gets an empty list, not an error.
func (s *Service) ListByOwner(ctx context.Context, userID string) ([]Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id is required")
	}
	return s.Repo.ListByOwner(ctx, userID)
}

// GetOwned fetches a resume only if it belongs to the caller. A resume owned
// by someone else reads as not found, so existence never leaks to non-owners.
func (s *Service) GetOwned(ctx context.Context, userID, resumeID string) (Resume, error) {
	resume, err := s.Repo.GetByID(ctx, resumeID)
	if err != nil {
		return Resume{}, err
	}
	if resume.UserID != userID {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}
