package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shorajtomer/portfolio-backend/internal/domain"
)

// CourseRepository stores courses in the courses collection, keyed by the
// application-level id field (not Mongo's _id).
type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(CollCourses)}
}

func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []domain.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

// FindByID returns the course, or (nil, nil) when no record matches.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	var course domain.Course
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	return &course, nil
}

func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return n, nil
}

func (r *CourseRepository) InsertMany(ctx context.Context, courses []domain.Course) error {
	docs := make([]interface{}, len(courses))
	for i, c := range courses {
		docs[i] = c
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert courses: %w", err)
	}
	return nil
}
