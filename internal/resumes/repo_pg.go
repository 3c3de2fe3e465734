package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Structured sections are stored as
// JSONB columns.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, personal_info, summary, experience, education, skills, projects, certifications, job_description, created_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (` + resumeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	personalInfo, err := json.Marshal(resume.PersonalInfo)
	if err != nil {
		return fmt.Errorf("marshal personal info: %w", err)
	}
	experience, err := marshalList(resume.Experience)
	if err != nil {
		return fmt.Errorf("marshal experience: %w", err)
	}
	education, err := marshalList(resume.Education)
	if err != nil {
		return fmt.Errorf("marshal education: %w", err)
	}
	skills, err := marshalList(resume.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	projects, err := marshalList(resume.Projects)
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	certifications, err := marshalList(resume.Certifications)
	if err != nil {
		return fmt.Errorf("marshal certifications: %w", err)
	}

	var summary sql.NullString
	if resume.Summary != "" {
		summary = sql.NullString{String: resume.Summary, Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		personalInfo,
		summary,
		experience,
		education,
		skills,
		projects,
		certifications,
		resume.JobDescription,
		resume.CreatedAt,
	)
	return err
}

// GetByID fetches a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1
LIMIT 1`
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, resumeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// ListByOwner lists a user's resumes newest-first.
func (r *PGRepo) ListByOwner(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// marshalList marshals a slice ensuring nil serializes as an empty JSON array.
func marshalList[T any](list []T) ([]byte, error) {
	if list == nil {
		list = []T{}
	}
	return json.Marshal(list)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var personalInfo, experience, education, skills, projects, certifications []byte
	var summary sql.NullString

	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&personalInfo,
		&summary,
		&experience,
		&education,
		&skills,
		&projects,
		&certifications,
		&resume.JobDescription,
		&resume.CreatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	if summary.Valid {
		resume.Summary = summary.String
	}
	for _, field := range []struct {
		raw  []byte
		dest any
	}{
		{personalInfo, &resume.PersonalInfo},
		{experience, &resume.Experience},
		{education, &resume.Education},
		{skills, &resume.Skills},
		{projects, &resume.Projects},
		{certifications, &resume.Certifications},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.dest); err != nil {
			return Resume{}, fmt.Errorf("unmarshal resume field: %w", err)
		}
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
