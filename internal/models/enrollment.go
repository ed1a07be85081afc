package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentInfo identifies the paying student on an enrollment record.
type StudentInfo struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Email string `json:"email" bson:"email"`
}

// Enrollment is written once per completed payment and never updated. The
// Courses field holds references into the courses collection; order-stats
// joins through it.
type Enrollment struct {
	ID            primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Student       StudentInfo          `json:"student" bson:"student"`
	Courses       []primitive.ObjectID `json:"courses" bson:"courses"`
	Price         float64              `json:"price" bson:"price"`
	TransactionID string               `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	Date          time.Time            `json:"date,omitempty" bson:"date,omitempty"`
}
