package resumes

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no resume matches the lookup.
var ErrNotFound = errors.New("resume not found")

// Repo defines persistence operations for resumes. Ownership checks are the
// caller's responsibility; the repo only stores and retrieves.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, resumeID string) (Resume, error)
	ListByOwner(ctx context.Context, userID string) ([]Resume, error)
}
