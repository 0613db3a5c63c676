package model

import "time"

// Announcement is a department notice posted by an exco or a lecturer.
// announcement_text is unique across the collection.
type Announcement struct {
	PhoneNumber string    `bson:"phone_number" json:"phone_number"`
	Role        string    `bson:"role" json:"role"`
	StudentName string    `bson:"student_name" json:"student_name"`
	Text        string    `bson:"announcement_text" json:"announcement_text"`
	Composed    string    `bson:"announcement" json:"announcement"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
