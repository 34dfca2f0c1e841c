package auth

import (
	"net/http"

	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
)

const (
	incorrectCredentials = "INCORRECT_CREDENTIALS" // errInfo
)

var (
	ErrIncorrectCredentials = sharedError.NewDomainError(incorrectCredentials)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectCredentials, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "아이디 또는 비밀번호가 일치하지 않습니다.",
	})
}
