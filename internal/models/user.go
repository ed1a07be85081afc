package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// UserStatus tracks the become-a-teacher flow: a student asking for the
// teacher role stays "Requested" until an admin promotes them.
type UserStatus string

const (
	StatusRequested UserStatus = "Requested"
	StatusVerified  UserStatus = "Verified"
)

type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	PhotoURL  string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Role      UserRole           `json:"role,omitempty" bson:"role,omitempty"`
	Status    UserStatus         `json:"status,omitempty" bson:"status,omitempty"`
	Timestamp time.Time          `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
}
