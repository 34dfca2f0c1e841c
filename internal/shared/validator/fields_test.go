package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("username", ValidateUsername))
	require.NoError(t, v.RegisterValidation("sortkey", ValidateSortKey))
	return v
}

func TestValidateUsername(t *testing.T) {
	v := newValidate(t)

	for _, ok := range []string{"member1", "비회원", "john.doe", "a_b-c"} {
		assert.NoError(t, v.Var(ok, "username"), ok)
	}
	for _, bad := range []string{"", "has space", "semi;colon", "quote'"} {
		assert.Error(t, v.Var(bad, "username"), bad)
	}
}

func TestValidateSortKey(t *testing.T) {
	v := newValidate(t)

	for _, ok := range []string{"age", "age,desc", "teamName,ASC"} {
		assert.NoError(t, v.Var(ok, "sortkey"), ok)
	}
	for _, bad := range []string{"age desc", "age,up", "1age", "age;drop"} {
		assert.Error(t, v.Var(bad, "sortkey"), bad)
	}
}

func TestToErrorResponse(t *testing.T) {
	v := newValidate(t)

	type request struct {
		Username string `validate:"required,username"`
	}
	err := v.Struct(request{Username: "bad name"})
	require.Error(t, err)

	resp, ok := ToErrorResponse(err)
	require.True(t, ok)
	assert.Equal(t, "ERROR-001", resp.Code)
	assert.Equal(t, "사용자 이름에는 문자, 숫자, '_', '.', '-'만 사용할 수 있습니다.", resp.Message)

	_, ok = ToErrorResponse(assert.AnError)
	assert.False(t, ok)
}

func TestToErrorResponse_MinByKind(t *testing.T) {
	v := newValidate(t)

	type request struct {
		Name string `validate:"min=3"`
		Age  int    `validate:"min=1"`
	}

	resp, ok := ToErrorResponse(v.Struct(request{Name: "ab", Age: 5}))
	require.True(t, ok)
	assert.Equal(t, "최소 3자 이상이어야 합니다.", resp.Message)

	resp, ok = ToErrorResponse(v.Struct(request{Name: "abc", Age: 0}))
	require.True(t, ok)
	assert.Equal(t, "1 이상이어야 합니다.", resp.Message)
}
