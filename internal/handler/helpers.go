package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"orderdesk/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// phonechars: digits, spaces, hyphens, plus signs and parentheses only.
	_ = validate.RegisterValidation("phonechars", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			switch {
			case r >= '0' && r <= '9':
			case r == ' ' || r == '-' || r == '+' || r == '(' || r == ')':
			default:
				return false
			}
		}
		return true
	})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Failures are written as {"message":"Validation failed","statusCode":400,
// "details":"..."} and the caller must return immediately.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("invalid JSON body: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			details := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				details = append(details, describeFieldError(fe))
			}
			c.JSON(http.StatusBadRequest, apierror.Validation(strings.Join(details, "; ")))
		} else {
			c.JSON(http.StatusBadRequest, apierror.Validation(err.Error()))
		}
		return false
	}
	return true
}

// describeFieldError turns a validator tag failure into a human-readable
// sentence, e.g. "name: must be at least 3 characters".
func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "email":
		return field + ": must be a valid e-mail address"
	case "uuid":
		return field + ": must be a valid UUID"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s: must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s: must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s: must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s: must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "phonechars":
		return field + ": use only digits, spaces, hyphens, plus signs and parentheses"
	default:
		return fmt.Sprintf("%s: failed on %s", field, fe.Tag())
	}
}

// respondError writes a service error to the client. Typed apierror values
// keep their status; anything else is logged and becomes a generic 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, apiErr)
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected service error")
	c.JSON(http.StatusInternalServerError, apierror.Internal())
}
