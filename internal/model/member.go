package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a student or exco record in the department roster.
// Stored in the Students_name collection; reg_no and email are unique.
type Member struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	Surname       string `bson:"surname" json:"surname"`
	FirstName     string `bson:"first_name" json:"first_name"`
	OtherNames    string `bson:"other_names" json:"other_names,omitempty"`
	AdmissionType string `bson:"admission_type" json:"admission_type"`
	PhoneNumber   string `bson:"phone_number" json:"phone_number"`
	Email         string `bson:"email" json:"email"`
	Gender        string `bson:"gender" json:"gender"`
	Role          string `bson:"role" json:"role"` // "Student" or "Exco"
	RegNo         string `bson:"reg_no" json:"reg_no"`
	Password      string `bson:"password" json:"-"` // bcrypt hash

	// Transient password-recovery fields, set by forgot-password and
	// removed when the OTP is consumed.
	ResetOTP  string    `bson:"reset_otp,omitempty" json:"-"`
	OTPExpiry time.Time `bson:"otp_expiry,omitempty" json:"-"`
}

// FullName joins surname, first name and optional other names.
func (m *Member) FullName() string {
	name := m.Surname + " " + m.FirstName
	if m.OtherNames != "" {
		name += " " + m.OtherNames
	}
	return name
}
