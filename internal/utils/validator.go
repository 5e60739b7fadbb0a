package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

// ValidationErrorData represents the data field in the validation error response.
type ValidationErrorData struct {
	Errors        []ValidationErrorDetail `json:"errors"`
	Documentation string                  `json:"documentation"`
}

const DocumentationLink = "/swagger/index.html"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		UseJSONFieldNames(v)
	}
}

// UseJSONFieldNames makes v report fields by their json tag.
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonTagName)
}

func jsonTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a formatted error response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		RespondValidationError(c, err)
		return false
	}
	return true
}

// RespondValidationError writes err as a 400 with per-field details.
func RespondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{
		Status:  http.StatusBadRequest,
		Message: "Invalid request parameters",
		Data: ValidationErrorData{
			Errors:        ValidationDetails(err),
			Documentation: DocumentationLink,
		},
	})
}

// ValidationDetails flattens binding and validation errors.
func ValidationDetails(err error) []ValidationErrorDetail {
	var (
		verrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &verrs):
		details := make([]ValidationErrorDetail, 0, len(verrs))
		for _, e := range verrs {
			details = append(details, fieldDetail(e))
		}
		return details
	case errors.As(err, &typeErr):
		return []ValidationErrorDetail{{
			Field:    typeErr.Field,
			Message:  fmt.Sprintf("Field '%s' has invalid type", typeErr.Field),
			Expected: typeErr.Type.String(),
			Received: typeErr.Value,
		}}
	default:
		return []ValidationErrorDetail{{
			Field:    "body",
			Message:  "Malformed JSON or invalid request body",
			Expected: "valid JSON",
			Received: "invalid",
		}}
	}
}

func fieldDetail(e validator.FieldError) ValidationErrorDetail {
	detail := ValidationErrorDetail{
		Field:    e.Field(),
		Message:  fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", e.Field(), e.Tag()),
		Expected: e.Param(),
		Received: e.Value(),
	}
	if detail.Expected == "" {
		detail.Expected = e.Tag()
	}

	switch e.Tag() {
	case "required":
		detail.Message = fmt.Sprintf("Field '%s' is required", e.Field())
		detail.Expected = "not null"
	case "email":
		detail.Message = fmt.Sprintf("Field '%s' must be a valid email address", e.Field())
		detail.Expected = "email format"
	case "max":
		detail.Message = fmt.Sprintf("Field '%s' must be at most %s long", e.Field(), e.Param())
		detail.Expected = fmt.Sprintf("max length %s", e.Param())
	case "oneof":
		detail.Message = fmt.Sprintf("Field '%s' must be one of: %s", e.Field(), e.Param())
		detail.Expected = strings.ReplaceAll(e.Param(), " ", "|")
	}
	return detail
}
