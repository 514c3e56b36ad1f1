package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"flashdeck/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody decodes the request body into dst.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}

// ValidateStruct runs the shared validator on dst and converts the first
// failure into a client-facing message.
func ValidateStruct(dst interface{}) error {
	err := Validator.Struct(dst)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		msg := validationErrors[0].Translate(Trans)
		return &ValidationError{Message: msg}
	}
	return err
}

// ValidationError carries a translated message for one failed field and maps
// to a 400 through model.ErrInvalidInput.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return model.ErrInvalidInput }
