// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/oguzatay/etkinlik-kayit/models"
)

// ValidationError reports the first rule violated by a registrant payload.
// Message is user-facing copy, Field the JSON field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var phoneMaskRE = regexp.MustCompile(`^0\(\d{3}\)-\d{3}-\d{2}-\d{2}$`)

// The single authoritative copy of the form ruleset. The client runs the same
// rules for UX, but only this evaluation decides.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	val.RegisterValidation("phonemask", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if !phoneMaskRE.MatchString(raw) {
			return false
		}
		return len(NormalizePhone(raw)) == 11
	})

	val.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Grades, fl.Field().String())
	})

	return val
}

// messages maps struct field + failed tag to the text shown next to the form.
var messages = map[string]string{
	"Name/required":       "İsim alanı zorunludur",
	"Email/required":      "Geçersiz email",
	"Email/email":         "Geçersiz email",
	"Phone/required":      "Telefon numaranız 0(XXX)-XXX-XX-XX formatında olmalıdır",
	"Phone/phonemask":     "Telefon numaranız 0(XXX)-XXX-XX-XX formatında olmalıdır",
	"Department/required": "Bölüm alanı zorunludur",
	"Grade/required":      "Geçersiz sınıf değeri",
	"Grade/grade":         "Geçersiz sınıf değeri",
	"Age/required":        "Yaş alanı zorunludur",
	"Age/gte":             "18 yaşından küçükler katılamaz",
	"Age/lte":             "Geçersiz yaş",
}

// jsonFields maps struct field names to their JSON form names.
var jsonFields = map[string]string{
	"Name":       "name",
	"Email":      "email",
	"Phone":      "phone",
	"Department": "department",
	"Grade":      "grade",
	"Age":        "age",
}

// Registrant checks a registrant payload against the form ruleset and returns
// the first violation, in field order. A nil return means the payload is
// acceptable for persistence once the phone is normalized.
func Registrant(input models.RegistrantInput) *ValidationError {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &ValidationError{Field: "form", Message: models.MsgGenericError}
	}

	// Fail-fast: report only the first violation
	first := verrs[0]
	field := jsonFields[first.StructField()]
	if field == "" {
		field = first.StructField()
	}

	msg := messages[first.StructField()+"/"+first.Tag()]
	if msg == "" {
		msg = models.MsgGenericError
	}

	return &ValidationError{Field: field, Message: msg}
}
