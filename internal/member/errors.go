package member

import (
	"net/http"

	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
)

const (
	memberNotFound        = "MEMBER_NOT_FOUND"        // errInfo
	bulkConditionRequired = "BULK_CONDITION_REQUIRED" // errInfo
)

var (
	ErrMemberNotFound        = sharedError.NewDomainError(memberNotFound)
	ErrBulkConditionRequired = sharedError.NewDomainError(bulkConditionRequired)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(bulkConditionRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-003",
		Message: "일괄 변경에는 조건이 필요합니다.",
	})
}
