package lecturer

import (
	"github.com/dept-026/membership-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

type RegisterRequest struct {
	Surname     string `json:"surname" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	OtherNames  string `json:"other_names"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	Title       string `json:"title"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message  string          `json:"message"`
	Lecturer *model.Lecturer `json:"lecturer"`
}

type ChangePasswordRequest struct {
	Email            string `json:"email" binding:"required"`
	PreviousPassword string `json:"previous_password" binding:"required"`
	NewPassword      string `json:"new_password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ForgotPasswordResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// RoleChangeRequest carries the acting lecturer's credentials and the
// target member's registration number.
type RoleChangeRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	RegNo    string `json:"reg_no" binding:"required"`
}

type RoleChangeResponse struct {
	Message string `json:"message"`
}

// DirectoryResponse exposes the read-only lecturer directory projection
// maintained outside this service; entries are free-form documents.
type DirectoryResponse struct {
	Lecturers []bson.M `json:"lecturers"`
}
