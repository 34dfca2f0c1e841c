package team

import (
	"net/http"

	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
)

const (
	teamNotFound      = "TEAM_NOT_FOUND"      // errInfo
	teamAlreadyExists = "TEAM_ALREADY_EXISTS" // errInfo
)

var (
	ErrTeamNotFound      = sharedError.NewDomainError(teamNotFound)
	ErrTeamAlreadyExists = sharedError.NewDomainError(teamAlreadyExists)
)

func init() {
	sharedError.RegisterDomainErrorResponse(teamNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "TEAM-001",
		Message: "팀 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(teamAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "TEAM-002",
		Message: "이미 존재하는 팀 이름입니다.",
	})
}
