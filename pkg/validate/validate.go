package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterValidation("isbn13", func(fl validator.FieldLevel) bool {
		return IsISBN13(fl.Field().String())
	})
	return val
}

// Struct validates a DTO against its validate tags.
func Struct(s any) error {
	return v.Struct(s)
}

// IsCardNumber reports whether a library card number carries a valid Luhn
// check digit.
func IsCardNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsISBN13 validates an ISBN-13 (EAN-13 weighted checksum). Hyphens and
// spaces are ignored.
func IsISBN13(s string) bool {
	s = strings.NewReplacer("-", "", " ", "").Replace(s)
	if len(s) != 13 {
		return false
	}
	sum := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		d := int(r - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return sum%10 == 0
}
