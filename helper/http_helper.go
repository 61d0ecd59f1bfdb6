package helper

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"article-intake/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds a validator whose messages are translated to English
// and refer to fields by their JSON names.
func NewHTTPHelper() (*HTTPHelper, error) {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &HTTPHelper{Validate: validate, Translator: trans}, nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ValidateStruct runs the validator over i and converts any failure into a
// *models.ErrorValidation keyed by JSON field name.
func (u *HTTPHelper) ValidateStruct(i interface{}) error {
	err := u.Validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := map[string][]string{}
	translated := validationErrors.Translate(u.Translator)
	for _, fe := range validationErrors {
		fields[fe.Field()] = append(fields[fe.Field()], translated[fe.Namespace()])
	}
	return &models.ErrorValidation{Fields: fields}
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var validationErr *models.ErrorValidation
	var databaseErr *models.ErrorDatabase
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &databaseErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// SendError ...
// Send error response to consumers, with the status derived from err.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	var validationErr *models.ErrorValidation
	if errors.As(err, &validationErr) {
		u.SendValidationError(c, validationErr)
		return
	}

	c.JSON(u.GetStatusCode(err), models.ErrorResponse{Detail: err.Error()})
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, err *models.ErrorValidation) {
	c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Detail: err.Fields})
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
