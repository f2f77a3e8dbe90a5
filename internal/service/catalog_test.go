package service

import (
	"context"
	"testing"

	"github.com/shorajtomer/portfolio-backend/internal/domain"
)

func TestSeed_InsertsSampleCoursesWhenEmpty(t *testing.T) {
	store := &MockCourseStore{}
	svc := NewCatalogService(store)

	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if len(store.Inserted) != 1 {
		t.Fatalf("expected 1 insert batch, got %d", len(store.Inserted))
	}
	courses := store.Inserted[0]
	if len(courses) != 3 {
		t.Fatalf("expected 3 seeded courses, got %d", len(courses))
	}

	seen := map[string]bool{}
	for _, c := range courses {
		if c.ID == "" {
			t.Errorf("course %q seeded without id", c.Title)
		}
		if seen[c.ID] {
			t.Errorf("duplicate course id %s", c.ID)
		}
		seen[c.ID] = true
		if c.CreatedAt.IsZero() {
			t.Errorf("course %q seeded without timestamp", c.Title)
		}
	}
}

func TestSeed_RunOnce(t *testing.T) {
	store := &MockCourseStore{}
	svc := NewCatalogService(store)

	for i := 0; i < 2; i++ {
		if err := svc.Seed(context.Background()); err != nil {
			t.Fatalf("seed %d failed: %v", i, err)
		}
	}

	if len(store.Courses) != 3 {
		t.Fatalf("expected 3 courses after double seed, got %d", len(store.Courses))
	}
}

func TestGetCourse(t *testing.T) {
	store := &MockCourseStore{Courses: []domain.Course{
		{ID: "c1", Title: "Go Basics", Price: 49.99},
	}}
	svc := NewCatalogService(store)

	t.Run("found", func(t *testing.T) {
		course, err := svc.GetCourse(context.Background(), "c1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if course.Title != "Go Basics" {
			t.Errorf("expected Go Basics, got %s", course.Title)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetCourse(context.Background(), "missing")
		appErr, ok := domain.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %v", err)
		}
		if appErr.Code != 404 {
			t.Errorf("expected 404, got %d", appErr.Code)
		}
		if appErr.Message != "Course not found" {
			t.Errorf("expected 'Course not found', got %q", appErr.Message)
		}
	})
}

func TestListCourses_StoreError(t *testing.T) {
	store := &MockCourseStore{ListFunc: func(ctx context.Context) ([]domain.Course, error) {
		return nil, ErrMockStore
	}}
	svc := NewCatalogService(store)

	_, err := svc.ListCourses(context.Background())
	appErr, ok := domain.AsAppError(err)
	if !ok || appErr.Code != 500 {
		t.Fatalf("expected 500 AppError, got %v", err)
	}
}

func TestPackages(t *testing.T) {
	svc := NewCatalogService(&MockCourseStore{})
	pkgs := svc.Packages()

	if len(pkgs) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(pkgs))
	}
	if pkgs["bundle"].Price != 199.99 {
		t.Errorf("expected bundle price 199.99, got %v", pkgs["bundle"].Price)
	}
	if pkgs["subscription"].Price != 49.99 {
		t.Errorf("expected subscription price 49.99, got %v", pkgs["subscription"].Price)
	}
	if pkgs["individual"].Price != 0 {
		t.Errorf("individual package must not carry a fixed price, got %v", pkgs["individual"].Price)
	}
}

func TestPersonalInfo(t *testing.T) {
	svc := NewCatalogService(&MockCourseStore{})
	info := svc.PersonalInfo()

	if info.Name == "" || info.Title == "" {
		t.Error("profile missing name or title")
	}
	if len(info.Skills) == 0 || len(info.Experience) == 0 {
		t.Error("profile missing skills or experience")
	}
	if info.Contact["email"] == "" {
		t.Error("profile missing contact email")
	}
}
