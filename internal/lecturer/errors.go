package lecturer

import (
	"net/http"

	sharedError "github.com/dept-026/membership-api/internal/shared/error"
)

const (
	phoneExists        = "LECTURER_PHONE_EXISTS"        // errInfo
	emailExists        = "LECTURER_EMAIL_EXISTS"        // errInfo
	notFound           = "LECTURER_NOT_FOUND"           // errInfo
	invalidCredentials = "LECTURER_INVALID_CREDENTIALS" // errInfo
	wrongPrevPassword  = "LECTURER_WRONG_PREV_PASSWORD" // errInfo
	invalidOTP         = "LECTURER_INVALID_OTP"         // errInfo
	expiredOTP         = "LECTURER_EXPIRED_OTP"         // errInfo
	noLecturers        = "LECTURER_NONE_FOUND"          // errInfo
)

var (
	ErrPhoneExists           = sharedError.NewDomainError(phoneExists)
	ErrEmailExists           = sharedError.NewDomainError(emailExists)
	ErrNotFound              = sharedError.NewDomainError(notFound)
	ErrInvalidCredentials    = sharedError.NewDomainError(invalidCredentials)
	ErrPrevPasswordIncorrect = sharedError.NewDomainError(wrongPrevPassword)
	ErrInvalidOTP            = sharedError.NewDomainError(invalidOTP)
	ErrOTPExpired            = sharedError.NewDomainError(expiredOTP)
	ErrNoLecturers           = sharedError.NewDomainError(noLecturers)
)

func init() {
	sharedError.RegisterDomainErrorResponse(phoneExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "LECTURER-001",
		Message: "A lecturer with this phone number already exists",
	})

	sharedError.RegisterDomainErrorResponse(emailExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "LECTURER-002",
		Message: "A lecturer with this email already exists",
	})

	sharedError.RegisterDomainErrorResponse(notFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LECTURER-003",
		Message: "No lecturer found with this email",
	})

	sharedError.RegisterDomainErrorResponse(invalidCredentials, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "LECTURER-004",
		Message: "Invalid email or password",
	})

	sharedError.RegisterDomainErrorResponse(wrongPrevPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LECTURER-005",
		Message: "Previous password is incorrect",
	})

	sharedError.RegisterDomainErrorResponse(invalidOTP, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LECTURER-006",
		Message: "Invalid OTP",
	})

	sharedError.RegisterDomainErrorResponse(expiredOTP, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LECTURER-007",
		Message: "OTP has expired. Please request a new one.",
	})

	sharedError.RegisterDomainErrorResponse(noLecturers, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LECTURER-008",
		Message: "No lecturers found",
	})
}
