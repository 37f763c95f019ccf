package helpers

import (
	"net/http"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// ValidateRequest runs v.Validate(). On failure it writes a 400 validation
// error and returns false; otherwise returns true.
// Callers should return immediately when ValidateRequest returns false.
func ValidateRequest(w http.ResponseWriter, v Validator) bool {
	if errs := v.Validate(); len(errs) > 0 {
		WriteJSONValidationError(w, errs)
		return false
	}
	return true
}
