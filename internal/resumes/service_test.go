package resumes

import (
	"context"
	"errors"
	"testing"
	"time"
)

func seedResume(t *testing.T, repo Repo, id, userID string, createdAt time.Time) {
	t.Helper()
	err := repo.Create(context.Background(), Resume{
		ID:        id,
		UserID:    userID,
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("seed resume %s: %v", id, err)
	}
}

func TestListByOwnerNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedResume(t, repo, "r1", "user-1", base)
	seedResume(t, repo, "r2", "user-1", base.Add(time.Hour))
	seedResume(t, repo, "r3", "user-1", base.Add(2*time.Hour))

	list, err := svc.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 resumes, got %d", len(list))
	}
	for i, want := range []string{"r3", "r2", "r1"} {
		if list[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, list[i].ID)
		}
	}
}

func TestListByOwnerEmptyIsNotError(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	list, err := svc.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(list))
	}
}

func TestListByOwnerScopedToOwner(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	now := time.Now().UTC()
	seedResume(t, repo, "mine", "user-1", now)
	seedResume(t, repo, "theirs", "user-2", now)

	list, err := svc.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 1 || list[0].ID != "mine" {
		t.Fatalf("expected only owned resume, got %+v", list)
	}
}

func TestGetOwnedCollapsesForeignResumeIntoNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	seedResume(t, repo, "r1", "user-1", time.Now().UTC())

	if _, err := svc.GetOwned(context.Background(), "user-1", "r1"); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := svc.GetOwned(context.Background(), "user-2", "r1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}
	if _, err := svc.GetOwned(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing resume, got %v", err)
	}
}
