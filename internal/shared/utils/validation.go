package utils

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"intake/internal/shared/errors"
)

func init() {
	// Report json field names instead of Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// BindJSON decodes the request body into obj, ignoring unknown fields, and
// runs the binding validator. Failures come back as a validation AppError
// with one entry per rejected field.
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return ValidationErrorFrom(err)
	}
	return nil
}

// BindJSONStrict behaves like BindJSON but rejects fields that obj does not
// declare.
func BindJSONStrict(c *gin.Context, obj any) error {
	if c.Request == nil || c.Request.Body == nil {
		return errors.NewValidationError("Request body is required")
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return errors.NewValidationError("Invalid request body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return ValidationErrorFrom(err)
	}
	if dec.More() {
		return errors.NewValidationError("Invalid request body", "unexpected data after JSON object")
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return ValidationErrorFrom(err)
	}
	return nil
}

// ValidateStruct runs the binding validator against s.
func ValidateStruct(s any) error {
	if err := binding.Validator.ValidateStruct(s); err != nil {
		return ValidationErrorFrom(err)
	}
	return nil
}

// ValidationErrorFrom converts decode and validator failures into a
// validation AppError. Other errors are wrapped as-is in the details.
func ValidationErrorFrom(err error) *errors.AppError {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		appErr := errors.NewValidationError("Validation failed")
		for _, fe := range validationErrs {
			appErr.WithFields(errors.FieldError{
				Field:   fieldPath(fe),
				Message: fieldErrorMessage(fe),
			})
		}
		return appErr
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return errors.NewValidationError("Invalid request body", "expected a JSON object")
		}
		return errors.NewFieldValidationError(field,
			fmt.Sprintf("%s must be of type %s", field, jsonTypeName(typeErr.Type)))
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewValidationError("Invalid request body", "malformed JSON")
	}

	if stderrors.Is(err, io.EOF) {
		return errors.NewValidationError("Request body is required")
	}

	if field, ok := unknownField(err); ok {
		return errors.NewFieldValidationError(field, fmt.Sprintf("%s is not allowed", field))
	}

	return errors.NewValidationError("Invalid request body", err.Error())
}

// unknownField extracts the name from encoding/json's unknown field error,
// which has no exported type.
func unknownField(err error) (string, bool) {
	const prefix = "json: unknown field "
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Ptr:
		return jsonTypeName(t.Elem())
	default:
		return "object"
	}
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "required_without", "required_without_all":
		return fmt.Sprintf("at least one of %s or %s is required", field, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
