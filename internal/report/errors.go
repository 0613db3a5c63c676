package report

import (
	"net/http"

	sharedError "github.com/dept-026/membership-api/internal/shared/error"
)

const noExcos = "REPORT_NO_EXCOS" // errInfo

var ErrNoExcos = sharedError.NewDomainError(noExcos)

func init() {
	sharedError.RegisterDomainErrorResponse(noExcos, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "REPORT-001",
		Message: "No excos found",
	})
}
