package context

import (
	"net/http"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/logger"

	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// Context keys for storing the authenticated principal
const (
	SubjectKey   = "subject"
	TokenTypeKey = "token_type"
)

func GetSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(SubjectKey)
	if !exists {
		return "", false
	}

	s, ok := subject.(string)
	if !ok || s == "" {
		return "", false
	}

	return s, true
}

// RequireSubject retrieves the authenticated admin from the Gin context.
// If it is missing, an authentication error response is sent and false is returned.
func RequireSubject(c *gin.Context) (string, bool) {
	subject, ok := GetSubject(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "로그인을 해주세요.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 인증 주체가 존재하지 않습니다.")
		return "", false
	}
	return subject, true
}
