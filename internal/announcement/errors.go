package announcement

import (
	"net/http"

	sharedError "github.com/dept-026/membership-api/internal/shared/error"
)

const (
	authorNotFound = "ANNOUNCEMENT_AUTHOR_NOT_FOUND" // errInfo
	roleForbidden  = "ANNOUNCEMENT_ROLE_FORBIDDEN"   // errInfo
	duplicateText  = "ANNOUNCEMENT_DUPLICATE"        // errInfo
	noneFound      = "ANNOUNCEMENT_NONE_FOUND"       // errInfo
)

var (
	ErrAuthorNotFound = sharedError.NewDomainError(authorNotFound)
	ErrRoleForbidden  = sharedError.NewDomainError(roleForbidden)
	ErrDuplicate      = sharedError.NewDomainError(duplicateText)
	ErrNoneFound      = sharedError.NewDomainError(noneFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(authorNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ANNOUNCEMENT-001",
		Message: "No member or lecturer found with this phone number",
	})

	sharedError.RegisterDomainErrorResponse(roleForbidden, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "ANNOUNCEMENT-002",
		Message: "Access denied: only Exco or Lecturer can create announcements",
	})

	sharedError.RegisterDomainErrorResponse(duplicateText, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "ANNOUNCEMENT-003",
		Message: "This announcement has already been posted",
	})

	sharedError.RegisterDomainErrorResponse(noneFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ANNOUNCEMENT-004",
		Message: "No announcements found",
	})
}
