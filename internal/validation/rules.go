// Package validation provides custom validation rules for the application.
package validation

import (
	"net/url"
	"regexp"

	validation "github.com/jellydator/validation"

	apperrors "github.com/trivalleytech/site-api/internal/errors"
)

var (
	// hexTokenRegex matches a 64-character lowercase hex string, the textual form
	// of a 32-byte admin token and of its SHA-256 digest.
	hexTokenRegex = regexp.MustCompile(`^[0-9a-f]{64}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// IsHexToken validates that a value is a 64-character lowercase hex string.
var IsHexToken = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_hex_token", "token must be a string")
	}
	if !hexTokenRegex.MatchString(s) {
		return validation.NewError(
			"validation_hex_token",
			"token must be a 64-character lowercase hex string",
		)
	}
	return nil
})

// IsHTTPURL validates that a value is an absolute http or https URL.
// Empty strings are accepted; combine with validation.Required to forbid them.
var IsHTTPURL = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_http_url", "link must be a string")
	}
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return validation.NewError("validation_http_url", "link must be an absolute http(s) URL")
	}
	return nil
})
