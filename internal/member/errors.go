package member

import (
	"net/http"

	sharedError "github.com/dept-026/membership-api/internal/shared/error"
)

const (
	emailExists        = "MEMBER_EMAIL_EXISTS"        // errInfo
	regNoExists        = "MEMBER_REG_NO_EXISTS"       // errInfo
	notFound           = "MEMBER_NOT_FOUND"           // errInfo
	invalidCredentials = "MEMBER_INVALID_CREDENTIALS" // errInfo
	wrongPrevPassword  = "MEMBER_WRONG_PREV_PASSWORD" // errInfo
	invalidOTP         = "MEMBER_INVALID_OTP"         // errInfo
	expiredOTP         = "MEMBER_EXPIRED_OTP"         // errInfo
	noMembers          = "MEMBER_NONE_FOUND"          // errInfo
	noMembersForGender = "MEMBER_NONE_FOR_GENDER"     // errInfo
)

var (
	ErrEmailExists           = sharedError.NewDomainError(emailExists)
	ErrRegNoExists           = sharedError.NewDomainError(regNoExists)
	ErrNotFound              = sharedError.NewDomainError(notFound)
	ErrInvalidCredentials    = sharedError.NewDomainError(invalidCredentials)
	ErrPrevPasswordIncorrect = sharedError.NewDomainError(wrongPrevPassword)
	ErrInvalidOTP            = sharedError.NewDomainError(invalidOTP)
	ErrOTPExpired            = sharedError.NewDomainError(expiredOTP)
	ErrNoMembers             = sharedError.NewDomainError(noMembers)
	ErrNoMembersForGender    = sharedError.NewDomainError(noMembersForGender)
)

func init() {
	sharedError.RegisterDomainErrorResponse(emailExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-001",
		Message: "A user with this email already exists",
	})

	sharedError.RegisterDomainErrorResponse(regNoExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "A user with this registration number already exists",
	})

	sharedError.RegisterDomainErrorResponse(notFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-003",
		Message: "No student found with this registration number",
	})

	sharedError.RegisterDomainErrorResponse(invalidCredentials, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "MEMBER-004",
		Message: "Invalid registration number or password",
	})

	sharedError.RegisterDomainErrorResponse(wrongPrevPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-005",
		Message: "Previous password is incorrect",
	})

	sharedError.RegisterDomainErrorResponse(invalidOTP, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-006",
		Message: "Invalid OTP",
	})

	sharedError.RegisterDomainErrorResponse(expiredOTP, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-007",
		Message: "OTP has expired. Please request a new one.",
	})

	sharedError.RegisterDomainErrorResponse(noMembers, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-008",
		Message: "No students found",
	})

	sharedError.RegisterDomainErrorResponse(noMembersForGender, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-009",
		Message: "No members found for the requested gender",
	})
}
