package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shorajtomer/portfolio-backend/internal/domain"
)

// CatalogService serves courses, packages, and the static profile.
type CatalogService struct {
	courses CourseStore
}

func NewCatalogService(courses CourseStore) *CatalogService {
	return &CatalogService{courses: courses}
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list courses", err)
	}
	return courses, nil
}

func (s *CatalogService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to get course", err)
	}
	if course == nil {
		return nil, domain.ErrNotFound("Course not found")
	}
	return course, nil
}

func (s *CatalogService) PersonalInfo() domain.PersonalInfo {
	return domain.DefaultPersonalInfo()
}

func (s *CatalogService) Packages() map[string]domain.Package {
	return domain.PackageMap()
}

// Seed inserts the sample catalog on first start. It checks emptiness first,
// so re-running never duplicates records. Not safe against concurrent first
// starts; single-instance deployment assumed.
func (s *CatalogService) Seed(ctx context.Context) error {
	n, err := s.courses.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	courses := domain.SampleCourses()
	now := time.Now()
	for i := range courses {
		courses[i].ID = uuid.New().String()
		courses[i].CreatedAt = now
	}
	return s.courses.InsertMany(ctx, courses)
}
