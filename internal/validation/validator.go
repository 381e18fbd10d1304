// Package validation wraps a shared go-playground validator and converts
// its failures into domain.ValidationError values.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// emailPattern is deliberately loose: something@something.something.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Messages maps "field.tag" (or just "tag") to a user-facing message.
type Messages map[string]string

func (m Messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[tag]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}

// Struct validates s and returns a *domain.ValidationError listing every
// failed field, or nil. Failures of "required" come first.
func Struct(s any, msgs Messages) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}

	var required, other []domain.FieldError
	for _, fe := range verrs {
		f := domain.FieldError{Field: fe.Field(), Message: msgs.lookup(fe.Field(), fe.Tag())}
		if fe.Tag() == "required" || fe.Tag() == "notblank" {
			required = append(required, f)
		} else {
			other = append(other, f)
		}
	}
	return domain.NewValidationErrors(append(required, other...))
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
