package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/utils"
)

var (
	Validate = validator.New()
	trans    ut.Translator

	iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ErrorPayload is the body of a failed tool call.
type ErrorPayload struct {
	Kind    exception.Kind `json:"kind"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
}

// Arguments is implemented by every typed tool argument struct.
type Arguments interface {
	Normalize()
	Validate() error
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	customTags := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{"iata", isIATACode, "{0} must be a 3-letter IATA airport code"},
		{"currency", isCurrencyCode, "{0} must be an ISO 4217 currency code"},
	}

	for _, custom := range customTags {
		if err := Validate.RegisterValidation(custom.tag, custom.fn); err != nil {
			return err
		}

		if err := registerTranslation(custom.tag, custom.message); err != nil {
			return err
		}
	}

	return registerTranslation("datetime", "{0} must be a valid date in YYYY-MM-DD format")
}

func registerTranslation(tag, message string) error {
	return Validate.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	)
}

func isIATACode(fl validator.FieldLevel) bool {
	return iataPattern.MatchString(fl.Field().String())
}

func isCurrencyCode(fl validator.FieldLevel) bool {
	return utils.IsCurrencyCode(fl.Field().String())
}

// ValidateSingleError validates req and reports the first failing field as a validation error.
func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return exception.Validation(ve[0].Field(), ve[0].Translate(trans))
		}
		return err
	}
	return nil
}

// DecodeArguments converts the loosely typed argument map of a tool call into T,
// normalizes and validates it.
func DecodeArguments[T any, PT interface {
	*T
	Arguments
}](args map[string]any) (T, error) {
	var req T

	if args == nil {
		args = map[string]any{}
	}

	raw, err := json.Marshal(args)
	if err != nil {
		return req, exception.Validation("", fmt.Sprintf("arguments are not valid JSON: %s", err))
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req, exception.Validation(typeErr.Field,
				fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.Kind()))
		}

		return req, exception.Validation("", fmt.Sprintf("invalid arguments: %s", err))
	}

	ptr := PT(&req)
	ptr.Normalize()

	if err := ptr.Validate(); err != nil {
		return req, err
	}

	return req, nil
}
