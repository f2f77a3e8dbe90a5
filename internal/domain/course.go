package domain

import "time"

// Course is a single catalog entry. Courses are seeded once at startup and
// immutable afterwards.
type Course struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Duration    string    `json:"duration" bson:"duration"`
	Difficulty  string    `json:"difficulty" bson:"difficulty"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	Instructor  string    `json:"instructor" bson:"instructor"`
	Rating      float64   `json:"rating" bson:"rating"`
	Students    int       `json:"students" bson:"students"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// SampleCourses returns the seed catalog. IDs and timestamps are filled in by
// the seeding step so restarts against an existing database never collide.
func SampleCourses() []Course {
	return []Course{
		{
			Title:       "Full Stack Web Development",
			Description: "Learn to build complete web applications using React, Node.js, and MongoDB. Master both frontend and backend development.",
			Price:       99.99,
			Duration:    "12 weeks",
			Difficulty:  "Intermediate",
			ImageURL:    "https://images.unsplash.com/photo-1541178735493-479c1a27ed24?crop=entropy&cs=srgb&fm=jpg&q=85",
			Instructor:  "Shoraj Tomer",
			Rating:      4.8,
			Students:    1250,
		},
		{
			Title:       "Python Data Science Masterclass",
			Description: "Master data science with Python, including NumPy, Pandas, Matplotlib, and machine learning with Scikit-learn.",
			Price:       129.99,
			Duration:    "10 weeks",
			Difficulty:  "Advanced",
			ImageURL:    "https://images.unsplash.com/photo-1426024120108-99cc76989c71?crop=entropy&cs=srgb&fm=jpg&q=85",
			Instructor:  "Shoraj Tomer",
			Rating:      4.9,
			Students:    890,
		},
		{
			Title:       "React & TypeScript Fundamentals",
			Description: "Build modern, type-safe React applications with TypeScript. Learn hooks, context, and best practices.",
			Price:       79.99,
			Duration:    "8 weeks",
			Difficulty:  "Beginner",
			ImageURL:    "https://images.unsplash.com/photo-1651796704084-a115817945b2?crop=entropy&cs=srgb&fm=jpg&q=85",
			Instructor:  "Shoraj Tomer",
			Rating:      4.7,
			Students:    2150,
		},
	}
}
