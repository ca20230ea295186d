package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is a write-only contact form submission; nothing in the
// API reads these back.
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Message   string             `bson:"message"`
	Subject   string             `bson:"subject,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}
