package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"youth-connect/backend/internal/model"
	"youth-connect/backend/pkg/response"
)

func init() {
	// 校验错误中的字段名使用 JSON 键名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON 绑定并校验请求体，失败时写入响应并返回 false
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

// writeBindError 只报告第一个失败字段
func writeBindError(c *gin.Context, err error) {
	var (
		maxErr     *http.MaxBytesError
		verrs      validator.ValidationErrors
		unknownErr *model.UnknownPermissionError
		typeErr    *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &maxErr):
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Request body too large")
	case errors.As(err, &verrs) && len(verrs) > 0:
		fe := verrs[0]
		response.ValidationError(c, 10001, fe.Field(), fieldMessage(fe))
	case errors.As(err, &unknownErr):
		response.ValidationError(c, 10001, "permissions", unknownErr.Error())
	case errors.As(err, &typeErr):
		response.ValidationError(c, 10001, typeErr.Field, fmt.Sprintf("%s has an invalid type", typeErr.Field))
	case errors.Is(err, io.EOF):
		response.BadRequest(c, 10001, "Request body is required")
	default:
		response.BadRequest(c, 10001, "Invalid request body")
	}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return field + " is invalid"
	}
}
