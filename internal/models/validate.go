package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Characters that split or end a registry line.
const lineBreakers = FieldSeparator + "\n\r"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("linesafe", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), lineBreakers)
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks the fields that would corrupt a registry line.
func (s *Student) Validate() error {
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(err, "Invalid student")
	}
	if strings.ContainsAny(s.password, lineBreakers) {
		return errors.New("Invalid student: password contains field separator or line break")
	}
	for _, course := range s.Courses {
		if strings.ContainsAny(course.Name, lineBreakers+CourseSeparator) {
			return errors.Errorf("Invalid student: bad course name %q", course.Name)
		}
	}
	return nil
}
