package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/pkg/apperrors"
)

type fakeExperienceStore struct {
	posts map[uuid.UUID]*models.Experience
}

func newFakeExperienceStore() *fakeExperienceStore {
	return &fakeExperienceStore{posts: make(map[uuid.UUID]*models.Experience)}
}

func (f *fakeExperienceStore) Create(_ context.Context, e *models.Experience) error {
	ec := *e
	f.posts[e.ID] = &ec
	return nil
}

func (f *fakeExperienceStore) GetByID(_ context.Context, id uuid.UUID) (*models.Experience, error) {
	e, ok := f.posts[id]
	if !ok {
		return nil, apperrors.ErrExperienceNotFound
	}
	ec := *e
	return &ec, nil
}

func (f *fakeExperienceStore) List(_ context.Context) ([]*models.Experience, error) {
	out := make([]*models.Experience, 0, len(f.posts))
	for _, e := range f.posts {
		ec := *e
		out = append(out, &ec)
	}
	return out, nil
}

func (f *fakeExperienceStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return apperrors.ErrExperienceNotFound
	}
	delete(f.posts, id)
	return nil
}

func testAuthor(role models.Role) *models.User {
	return &models.User{
		ID:     uuid.New(),
		Name:   "Devi Prasad",
		RollNo: "22MCF1R01",
		Batch:  2025,
		Role:   role,
	}
}

func TestCreateExperience(t *testing.T) {
	ctx := context.Background()
	store := newFakeExperienceStore()
	svc := NewExperienceService(store, zerolog.Nop())
	author := testAuthor(models.RoleStudent)

	t.Run("snapshots author name and batch", func(t *testing.T) {
		exp, err := svc.CreateExperience(ctx, author, &dto.ExperienceRequest{
			CompanyName: "Initech",
			Content:     "Three rounds, mostly DSA and one system design discussion.",
		})
		if err != nil {
			t.Fatalf("CreateExperience: %v", err)
		}
		if exp.StudentName != author.Name || exp.Batch != author.Batch {
			t.Errorf("snapshot = %q/%d, want %q/%d", exp.StudentName, exp.Batch, author.Name, author.Batch)
		}
		if exp.UserID != author.ID {
			t.Errorf("userID = %s", exp.UserID)
		}
	})

	t.Run("empty fields are refused", func(t *testing.T) {
		_, err := svc.CreateExperience(ctx, author, &dto.ExperienceRequest{CompanyName: " ", Content: ""})
		var verr *apperrors.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
		if len(verr.Messages) != 2 {
			t.Errorf("messages = %v", verr.Messages)
		}
	})
}

func TestGetExperience(t *testing.T) {
	ctx := context.Background()
	store := newFakeExperienceStore()
	svc := NewExperienceService(store, zerolog.Nop())
	author := testAuthor(models.RoleStudent)

	posted, err := svc.CreateExperience(ctx, author, &dto.ExperienceRequest{
		CompanyName: "Initech",
		Content:     "Aptitude screen, then two technical rounds.",
	})
	if err != nil {
		t.Fatalf("CreateExperience: %v", err)
	}

	t.Run("returns the post", func(t *testing.T) {
		got, err := svc.GetExperience(ctx, posted.ID)
		if err != nil {
			t.Fatalf("GetExperience: %v", err)
		}
		if got.CompanyName != posted.CompanyName || got.UserID != author.ID {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := svc.GetExperience(ctx, uuid.New()); !errors.Is(err, apperrors.ErrExperienceNotFound) {
			t.Fatalf("err = %v, want ErrExperienceNotFound", err)
		}
	})
}

func TestDeleteExperience(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*ExperienceService, *fakeExperienceStore, *models.User, *models.Experience) {
		t.Helper()
		store := newFakeExperienceStore()
		svc := NewExperienceService(store, zerolog.Nop())
		author := testAuthor(models.RoleStudent)
		exp, err := svc.CreateExperience(ctx, author, &dto.ExperienceRequest{
			CompanyName: "Initech",
			Content:     "Writeup",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return svc, store, author, exp
	}

	t.Run("author deletes own post", func(t *testing.T) {
		svc, store, author, exp := setup(t)
		if err := svc.DeleteExperience(ctx, author, exp.ID); err != nil {
			t.Fatalf("DeleteExperience: %v", err)
		}
		if _, ok := store.posts[exp.ID]; ok {
			t.Error("post still present")
		}
	})

	t.Run("other students cannot delete", func(t *testing.T) {
		svc, store, _, exp := setup(t)
		stranger := testAuthor(models.RoleStudent)
		if err := svc.DeleteExperience(ctx, stranger, exp.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Fatalf("err = %v, want ErrPermissionDenied", err)
		}
		if _, ok := store.posts[exp.ID]; !ok {
			t.Error("post deleted despite refusal")
		}
	})

	t.Run("coordinator deletes any post", func(t *testing.T) {
		svc, store, _, exp := setup(t)
		coordinator := testAuthor(models.RoleCoordinator)
		if err := svc.DeleteExperience(ctx, coordinator, exp.ID); err != nil {
			t.Fatalf("DeleteExperience: %v", err)
		}
		if _, ok := store.posts[exp.ID]; ok {
			t.Error("post still present")
		}
	})

	t.Run("unknown post", func(t *testing.T) {
		svc, _, author, _ := setup(t)
		if err := svc.DeleteExperience(ctx, author, uuid.New()); !errors.Is(err, apperrors.ErrExperienceNotFound) {
			t.Fatalf("err = %v, want ErrExperienceNotFound", err)
		}
	})
}
