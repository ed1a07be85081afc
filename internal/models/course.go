package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeacherInfo is embedded in a course so course listings render without a
// users lookup.
type TeacherInfo struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

type Course struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	Category      string             `json:"category" bson:"category"`
	Price         float64            `json:"price" bson:"price"`
	TotalEnrolled int                `json:"total_enrolled" bson:"total_enrolled"`
	Teacher       TeacherInfo        `json:"teacher" bson:"teacher"`
	CreatedAt     time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
