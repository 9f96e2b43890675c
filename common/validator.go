package common

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidatePayload checks an outgoing request body against its validate tags
// before any network call is made. A failure here never reaches the wire.
func ValidatePayload(payload interface{}) error {
	return validate.Struct(payload)
}
