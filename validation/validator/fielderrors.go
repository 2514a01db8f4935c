// Package validator bridges go-playground/validator errors to the
// field-error shape consumed by the response envelope.
package validator

import (
	"errors"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/lightspeed-go/respkit/ecode"
)

// FieldErrors flattens a validation error into a field-to-message map
// suitable for resp.Envelope.MarkError. A nil or non-validator error
// yields nil. Field names come from validator's Field(); register a
// tag name function on the validator to surface json names instead of
// struct field names.
func FieldErrors(err error) map[string]string {
	return TranslatedFieldErrors(err, nil)
}

// TranslatedFieldErrors is FieldErrors with messages produced through
// the given translator. A nil translator falls back to the canned
// ecode messages.
func TranslatedFieldErrors(err error, trans ut.Translator) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if trans != nil {
			out[field] = fe.Translate(trans)
			continue
		}
		out[field] = message(fe)
	}
	return out
}

// message maps a failed validation tag to a canned message.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return ecode.FieldIsRequired(fe.Field())
	default:
		return ecode.FieldIsInvalid(fe.Field())
	}
}
