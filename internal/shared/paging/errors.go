package paging

import (
	"net/http"

	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
)

const (
	invalidPaginationSpec = "INVALID_PAGINATION_SPEC" // errInfo
	queryExecutionFailed  = "QUERY_EXECUTION_FAILED"  // errInfo
)

var (
	// ErrInvalidPaginationSpec is returned before any query is issued
	ErrInvalidPaginationSpec = sharedError.NewDomainError(invalidPaginationSpec)
	// ErrQueryExecutionFailed wraps any error reported by the database
	ErrQueryExecutionFailed = sharedError.NewDomainError(queryExecutionFailed)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidPaginationSpec, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "PAGE-001",
		Message: "페이지 요청 값이 올바르지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(queryExecutionFailed, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "QUERY-001",
		Message: "조회 중 오류가 발생했습니다.",
	})
}
