package member

import "github.com/dept-026/membership-api/internal/model"

type RegisterRequest struct {
	Surname       string `json:"surname" binding:"required"`
	FirstName     string `json:"first_name" binding:"required"`
	OtherNames    string `json:"other_names"`
	AdmissionType string `json:"admission_type" binding:"required"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Gender        string `json:"gender" binding:"required"`
	Role          string `json:"role" binding:"required"`
	RegNo         string `json:"reg_no" binding:"required"`
}

type LoginRequest struct {
	RegNo    string `json:"reg_no" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string        `json:"message"`
	Student *model.Member `json:"student"`
}

type ChangePasswordRequest struct {
	RegNo            string `json:"reg_no" binding:"required"`
	PreviousPassword string `json:"previous_password" binding:"required"`
	NewPassword      string `json:"new_password" binding:"required"`
}

type ForgotPasswordRequest struct {
	RegNo string `json:"reg_no" binding:"required"`
}

type ForgotPasswordResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ResetPasswordRequest struct {
	RegNo       string `json:"reg_no" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type ByGenderRequest struct {
	Gender string `json:"gender" binding:"required"`
}

type StatsSummary struct {
	TotalExcos    int64 `json:"total_excos"`
	TotalStudents int64 `json:"total_students"`
	TotalMembers  int   `json:"total_members"`
}

type StatsResponse struct {
	Members []model.Member `json:"members"`
	Summary StatsSummary   `json:"summary"`
}

type SummaryResponse struct {
	TotalStudents int            `json:"total_students"`
	Male          int            `json:"male"`
	Female        int            `json:"female"`
	Students      []model.Member `json:"students"`
}
