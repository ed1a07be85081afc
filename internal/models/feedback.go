package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Feedback documents are seeded out of band; this API only reads them.
type Feedback struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Image    string             `json:"image,omitempty" bson:"image,omitempty"`
	Rating   int                `json:"rating" bson:"rating"`
	Text     string             `json:"text" bson:"text"`
	CourseID primitive.ObjectID `json:"course_id,omitempty" bson:"course_id,omitempty"`
}
