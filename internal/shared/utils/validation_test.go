package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake/internal/shared/errors"
)

type sampleRequest struct {
	Name    string  `json:"name" binding:"required,max=5"`
	Age     int     `json:"age" binding:"required,gte=1,lte=5"`
	Comment *string `json:"comment" binding:"omitempty,max=3"`
}

func newJSONContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func fieldNames(appErr *errors.AppError) []string {
	names := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestBindJSON(t *testing.T) {
	t.Run("valid body with unknown field", func(t *testing.T) {
		var req sampleRequest
		err := BindJSON(newJSONContext(`{"name":"jo","age":2,"extra":true}`), &req)

		require.NoError(t, err)
		assert.Equal(t, "jo", req.Name)
	})

	t.Run("validator failures use json names", func(t *testing.T) {
		var req sampleRequest
		err := BindJSON(newJSONContext(`{"name":"toolong","age":9}`), &req)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		assert.ElementsMatch(t, []string{"name", "age"}, fieldNames(appErr))
	})

	t.Run("wrong json type", func(t *testing.T) {
		var req sampleRequest
		err := BindJSON(newJSONContext(`{"name":"jo","age":"two"}`), &req)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "age", appErr.Fields[0].Field)
		assert.Equal(t, "age must be of type number", appErr.Fields[0].Message)
	})

	t.Run("empty body", func(t *testing.T) {
		var req sampleRequest
		err := BindJSON(newJSONContext(``), &req)

		assert.True(t, errors.IsValidationError(err))
	})
}

func TestBindJSONStrict(t *testing.T) {
	t.Run("rejects unknown field", func(t *testing.T) {
		var req sampleRequest
		err := BindJSONStrict(newJSONContext(`{"name":"jo","age":2,"category":"billing"}`), &req)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "category", appErr.Fields[0].Field)
		assert.Equal(t, "category is not allowed", appErr.Fields[0].Message)
	})

	t.Run("validates after decoding", func(t *testing.T) {
		var req sampleRequest
		err := BindJSONStrict(newJSONContext(`{"name":"jo","age":2,"comment":"long"}`), &req)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, []string{"comment"}, fieldNames(appErr))
	})

	t.Run("malformed json", func(t *testing.T) {
		var req sampleRequest
		err := BindJSONStrict(newJSONContext(`{"name":`), &req)

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("valid", func(t *testing.T) {
		var req sampleRequest
		require.NoError(t, BindJSONStrict(newJSONContext(`{"name":"jo","age":5}`), &req))
		assert.Equal(t, 5, req.Age)
	})
}

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"1", 1, false},
		{"999", 999, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c := newJSONContext("")
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			got, err := ParseIDParam(c, "id")
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
