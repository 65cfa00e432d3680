package board

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxTextLength is the longest accepted message, counted in runes after
// trimming.
const MaxTextLength = 280

// Form field names used in ValidationError.
const (
	FieldAuthor = "author"
	FieldText   = "text"
	FieldName   = "name"
)

var validate = validator.New()

type submission struct {
	Author string `validate:"required"`
	Text   string `validate:"required,max=280"`
}

type identityChange struct {
	Name string `validate:"required"`
}

// ValidationError maps a form field to the message shown next to it.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Field returns the message for field, or "".
func (e *ValidationError) Field(field string) string {
	if e == nil {
		return ""
	}
	return e.Fields[field]
}

// ValidateSubmission checks author and text, both already trimmed.
func ValidateSubmission(author, text string) error {
	return translate(validate.Struct(submission{Author: author, Text: text}))
}

// ValidateIdentity checks a new identity name, already trimmed.
func ValidateIdentity(name string) error {
	return translate(validate.Struct(identityChange{Name: name}))
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Author":
			out.Fields[FieldAuthor] = "Enter a name"
		case "Text":
			if fe.Tag() == "max" {
				out.Fields[FieldText] = "Message is too long"
			} else {
				out.Fields[FieldText] = "Enter a message"
			}
		case "Name":
			out.Fields[FieldName] = "Name cannot be empty"
		default:
			out.Fields[strings.ToLower(fe.Field())] = fe.Error()
		}
	}
	return out
}
