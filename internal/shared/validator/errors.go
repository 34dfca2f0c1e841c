package validator

import (
	"errors"
	"fmt"
	"reflect"

	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts the first validation failure into ValidationFailed
// with a client message; other errors are not handled.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return nil, false
	}

	resp := sharedError.ValidationFailed
	resp.Message = messageFor(validationErrors[0])
	return &resp, true
}

var fixedMessages = map[string]string{
	"required": "필수 항목을 입력해 주세요.",
	"username": "사용자 이름에는 문자, 숫자, '_', '.', '-'만 사용할 수 있습니다.",
	"sortkey":  "정렬 형식이 올바르지 않습니다. (field 또는 field,desc)",
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}

	// min/max count characters on strings and compare values on numbers
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "min":
		if isString {
			return fmt.Sprintf("최소 %s자 이상이어야 합니다.", fe.Param())
		}
		return fmt.Sprintf("%s 이상이어야 합니다.", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("최대 %s자까지 입력 가능합니다.", fe.Param())
		}
		return fmt.Sprintf("%s 이하여야 합니다.", fe.Param())
	case "gte":
		return fmt.Sprintf("%s 이상이어야 합니다.", fe.Param())
	case "gt":
		return fmt.Sprintf("%s 초과여야 합니다.", fe.Param())
	case "lte":
		return fmt.Sprintf("%s 이하여야 합니다.", fe.Param())
	case "lt":
		return fmt.Sprintf("%s 미만이어야 합니다.", fe.Param())
	case "oneof":
		return fmt.Sprintf("허용된 값: %s", fe.Param())
	default:
		return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
	}
}
