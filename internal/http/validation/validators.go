// Package validation holds form-level checks run before a request reaches a service.
// Messages are in Turkish and are shown next to the offending field.
package validation

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

// Required validates that a field is not blank and does not exceed maxLen characters.
func Required(label string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return label + " zorunludur."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s en fazla %d karakter olabilir.", label, maxLen)
		}
		return ""
	}
}

// Optional validates that an optional field does not exceed maxLen characters if provided.
func Optional(label string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s en fazla %d karakter olabilir.", label, maxLen)
		}
		return ""
	}
}

// Email validates an address. Blank values are left to Required.
func Email() Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if _, err := mail.ParseAddress(v); err != nil || !strings.Contains(v, "@") {
			return "Geçerli bir e-posta adresi girin."
		}
		return ""
	}
}

// MinLength validates a minimum rune count for non-empty values.
func MinLength(label string, minLen int) Validator {
	return func(v string) string {
		if v == "" {
			return ""
		}
		if utf8.RuneCountInString(v) < minLen {
			return fmt.Sprintf("%s en az %d karakter olmalıdır.", label, minLen)
		}
		return ""
	}
}

// PositiveInt validates an optional whole number greater than zero.
func PositiveInt(label string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		i, err := strconv.Atoi(v)
		if err != nil || i <= 0 {
			return label + " pozitif bir tam sayı olmalıdır."
		}
		return ""
	}
}

// Price validates an optional non-negative amount. Both "1234.5" and "1234,5" are accepted.
func Price(label string) Validator {
	return func(v string) string {
		if _, err := ParsePrice(v); err != nil {
			return label + " geçerli bir tutar olmalıdır."
		}
		return ""
	}
}

// ParsePrice parses a price field. Blank is zero; a comma decimal separator is accepted.
func ParsePrice(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("negative price %q", v)
	}
	return f, nil
}

// FieldValidator provides a fluent API for validating multiple fields.
type FieldValidator struct {
	errors map[string]string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate validates a field with one or more validators.
// It stops at the first error for each field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	for _, v := range validators {
		if msg := v(value); msg != "" {
			fv.errors[field] = msg
			break
		}
	}
	return fv
}

// Add records a message for field unless one is already present.
func (fv *FieldValidator) Add(field, msg string) *FieldValidator {
	if _, ok := fv.errors[field]; !ok && msg != "" {
		fv.errors[field] = msg
	}
	return fv
}

// Errors returns the accumulated validation errors.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}

// Valid reports whether no field failed.
func (fv *FieldValidator) Valid() bool {
	return len(fv.errors) == 0
}
