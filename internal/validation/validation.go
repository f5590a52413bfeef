// Package validation checks create/update payloads before they reach the store.
// Rules are pure: nothing here touches persistence.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of validating a payload. A nil or empty Errors map means valid.
type Result struct {
	Errors map[string][]string `json:"errors,omitempty"`
}

// Valid reports whether no rule failed.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Add records a failure message for field.
func (r *Result) Add(field, message string) {
	if r.Errors == nil {
		r.Errors = make(map[string][]string)
	}
	r.Errors[field] = append(r.Errors[field], message)
}

// Validator evaluates the `validate` struct tags of payloads.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator. Field names in results are the payload's JSON names
// with the first letter upper-cased (e.g. "radius" -> "Radius").
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("notblank", notBlank)
	return &Validator{v: v}
}

// Validate runs every rule on payload, which must be a struct or pointer to struct.
func (val *Validator) Validate(payload any) Result {
	var res Result
	err := val.v.Struct(payload)
	if err == nil {
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.Add("", err.Error())
		return res
	}
	for _, fe := range verrs {
		res.Add(fe.Field(), message(fe))
	}
	return res
}

func fieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return !f.IsZero()
	}
	return strings.TrimFunc(f.String(), unicode.IsSpace) != ""
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("'%s' must not be empty.", field)
	case "len":
		return fmt.Sprintf("'%s' must be %s characters in length. You entered %d characters.", field, fe.Param(), utf8.RuneCountInString(fmt.Sprint(fe.Value())))
	case "startswith":
		return fmt.Sprintf("'%s' must start with '%s'.", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("'%s' must be a hex color in the form #RRGGBB.", field)
	case "gt":
		return fmt.Sprintf("'%s' must be greater than '%s'.", field, fe.Param())
	default:
		return fmt.Sprintf("'%s' is invalid.", field)
	}
}
