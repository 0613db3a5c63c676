package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lecturer is a faculty record. email and phone_number are unique.
type Lecturer struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	Surname     string `bson:"surname" json:"surname"`
	FirstName   string `bson:"first_name" json:"first_name"`
	OtherNames  string `bson:"other_names" json:"other_names,omitempty"`
	PhoneNumber string `bson:"phone_number" json:"phone_number"`
	Email       string `bson:"email" json:"email"`
	Gender      string `bson:"gender" json:"gender"`
	Title       string `bson:"title" json:"title,omitempty"` // "Dr" or "Prof", optional
	Role        string `bson:"role" json:"role"`             // always "lecturer"
	Password    string `bson:"password" json:"-"`

	ResetOTP  string    `bson:"reset_otp,omitempty" json:"-"`
	OTPExpiry time.Time `bson:"otp_expiry,omitempty" json:"-"`
}

// DisplayName is the title-prefixed full name used in notifications.
func (l *Lecturer) DisplayName() string {
	name := l.Surname + " " + l.FirstName
	if l.OtherNames != "" {
		name += " " + l.OtherNames
	}
	if l.Title != "" {
		return l.Title + " " + name
	}
	return name
}
