package helper

import (
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"artmarket-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper is the single terminal point for request validation and error
// responses: every failure goes through SendAppError, which selects the
// HTTP status from the error kind and never leaks storage error detail.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() (*HTTPHelper, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &HTTPHelper{Validate: validate, Translator: translator}, nil
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode maps a service error kind to its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch u.getTypeData(err) {
	case "models.ErrorValidation":
		return http.StatusBadRequest
	case "models.ErrorUnauthorized":
		return http.StatusUnauthorized
	case "models.ErrorForbidden":
		return http.StatusForbidden
	case "models.ErrorNotFound":
		return http.StatusNotFound
	case "models.ErrorRoleSync":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (u *HTTPHelper) errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusBadGateway:
		return "ROLE_SYNC_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// SendAppError writes the uniform error envelope for any service error.
func (u *HTTPHelper) SendAppError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(status, gin.H{
		"error": message,
		"code":  u.errorCode(status),
	})
}

// SendValidationError translates field-level validation failures into a
// 400 response keyed by snake_cased field names.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "Invalid request data",
		"code":   "VALIDATION_ERROR",
		"fields": errorResponse,
	})
}

// BindAndValidate decodes the JSON body into req and runs struct
// validation, responding on failure. Returns true when the request is
// usable.
func (u *HTTPHelper) BindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		u.SendAppError(c, models.NewValidationError("Malformed request body"))
		return false
	}

	if err := u.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			u.SendValidationError(c, validationErrors)
		} else {
			u.SendAppError(c, models.NewValidationError("Invalid request data"))
		}
		return false
	}

	return true
}

// Underscore converts a StructField name like AuthorDisplayName to
// author_display_name.
func Underscore(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
