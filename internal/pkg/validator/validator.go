package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Violation is one failed rule, keyed by the JSON field name.
type Violation struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	violations := Violations(v)
	if len(violations) == 0 {
		return nil
	}

	errs := make(map[string]string, len(violations))
	for _, vi := range violations {
		errs[vi.Field] = vi.Tag
	}
	return errs
}

// Violations returns failed rules in struct field order.
func Violations(v interface{}) []Violation {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Violation{{Field: "", Tag: err.Error()}}
	}
	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{Field: fe.Field(), Tag: fe.Tag()})
	}
	return out
}
