package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

// local validator, for Field() in ValidationErrors to return json-name
func newValidatorJSON() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func TestExtractErrorFields_NonValidationError(t *testing.T) {
	fields := ExtractErrorFields(errors.New("not a validation error"))
	require.Empty(t, fields)
}

// helper: validate struct, get single error and check fields
func checkSingleFieldError(t *testing.T, v *validator.Validate, s any, expectedField, expectedMsg string) {
	t.Helper()
	err := v.Struct(s)
	require.Error(t, err)

	fields := ExtractErrorFields(err)
	require.Len(t, fields, 1)
	require.Equal(t, expectedField, fields[0].FieldName)
	require.Equal(t, expectedMsg, fields[0].ErrorMessage)
}

func TestExtractErrorFields_TagMessages(t *testing.T) {
	v := newValidatorJSON()

	t.Run("required", func(t *testing.T) {
		type S struct {
			Title string `json:"title" validate:"required"`
		}
		checkSingleFieldError(t, v, S{Title: ""}, "title", "this field is required")
	})

	t.Run("min", func(t *testing.T) {
		type S struct {
			Title string `json:"title" validate:"min=3"`
		}
		checkSingleFieldError(t, v, S{Title: "ab"}, "title", "value is too short")
	})

	t.Run("max", func(t *testing.T) {
		type S struct {
			Title string `json:"title" validate:"max=2"`
		}
		checkSingleFieldError(t, v, S{Title: "abc"}, "title", "value is too long")
	})

	t.Run("gte", func(t *testing.T) {
		type S struct {
			Offset int `json:"offset" validate:"gte=0"`
		}
		checkSingleFieldError(t, v, S{Offset: -1}, "offset", "must be greater than or equal to the allowed minimum")
	})

	t.Run("lte", func(t *testing.T) {
		type S struct {
			Limit int `json:"limit" validate:"lte=10"`
		}
		checkSingleFieldError(t, v, S{Limit: 11}, "limit", "must be less than or equal to the allowed maximum")
	})

	t.Run("oneof", func(t *testing.T) {
		type S struct {
			Policy string `json:"policy" validate:"oneof=drop trunc"`
		}
		checkSingleFieldError(t, v, S{Policy: "keep"}, "policy", "must be one of the allowed values")
	})

	t.Run("default_fallback_for_unknown_but_valid_tag", func(t *testing.T) {
		type S struct {
			Color string `json:"color" validate:"hexcolor"`
		}
		checkSingleFieldError(t, v, S{Color: "not-hex"}, "color", "invalid input")
	})
}

func TestExtractErrorFromBuffer(t *testing.T) {
	exp := ErrorResponse{
		Error: "invalid params",
		Fields: []ErrorField{
			{FieldName: "title", ErrorMessage: "this field is required"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(exp))

	got, err := extractErrorFromBuffer(&buf)
	require.NoError(t, err)
	require.Equal(t, exp, *got)
}
