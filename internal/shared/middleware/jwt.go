package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/config"
	sharedContext "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

// unauthorized is the single response for every token failure; the cause is only logged
var unauthorized = sharedError.ErrorResponse{
	Status:  http.StatusUnauthorized,
	Code:    "AUTH-000",
	Message: "로그인을 해주세요.",
}

func init() {
	sharedError.RegisterDomainErrorResponses(unauthorized, missingToken, invalidToken, expiredToken, invalidClaims)
}

// JWT admits requests carrying a valid access token for the administrator
func JWT(cfg *config.Config) gin.HandlerFunc {
	return JWTWithManager(token.NewJWTManager(cfg))
}

func JWTWithManager(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := extractToken(c)
		if err != nil {
			reject(c, "extract_token", err)
			return
		}

		claims, err := tokenManager.ValidateToken(raw)
		if err != nil {
			reject(c, "validate_token", mapTokenError(err), "cause", err.Error())
			return
		}

		// refresh tokens only mint new access tokens
		if claims.TokenType != token.ACCESS {
			reject(c, "token_type", ErrInvalidClaims, "token_type", claims.TokenType)
			return
		}

		c.Set(sharedContext.SubjectKey, claims.Subject)
		c.Set(sharedContext.TokenTypeKey, claims.TokenType)
		c.Request = c.Request.WithContext(
			logger.With(c.Request.Context(), "subject", logger.MaskUsername(claims.Subject)),
		)
		c.Next()
	}
}

// reject logs the failed step and aborts with the registered 401 response
func reject(c *gin.Context, step string, err error, attrs ...any) {
	fields := append([]any{
		"step", step,
		"error", err.Error(),
		"client_ip", c.ClientIP(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"user_agent", c.Request.UserAgent(),
	}, attrs...)
	logger.FromContext(c.Request.Context()).Warn("JWT 인증 실패", fields...)

	c.Error(err)
	resp := sharedError.Resolve(err, unauthorized)
	c.AbortWithStatusJSON(resp.Status, resp)
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	scheme, raw, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) || strings.TrimSpace(raw) == "" {
		return "", ErrInvalidToken
	}

	return strings.TrimSpace(raw), nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}

