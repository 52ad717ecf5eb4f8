// Package validator provides input validation for the application
package validator

import (
	"errors"
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/kranthi46/Library-management/book"
)

// ErrInvalid is returned when a book or an update value breaks a catalog rule
var ErrInvalid = errors.New("invalid input")

var validate = playground.New(playground.WithRequiredStructEnabled())

// Error lists the rules a value broke. It matches ErrInvalid with errors.Is.
type Error struct {
	Reasons []string
}

func (e *Error) Error() string {
	return ErrInvalid.Error() + ": " + e.Reason()
}

// Reason joins the broken rules without the ErrInvalid prefix
func (e *Error) Reason() string {
	return strings.Join(e.Reasons, "; ")
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// ValidateBook checks that quantity and price are not negative.
// Duplicate ISBNs are allowed.
func ValidateBook(b book.Book) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(strings.ToLower(fe.Field()), fe))
	}
	return &Error{Reasons: msgs}
}

// ValidateQuantity checks a stock level before it is stored
func ValidateQuantity(quantity int) error {
	err := validate.Var(quantity, "gte=0")
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &Error{Reasons: []string{describe("quantity", fieldErrs[0])}}
	}
	return err
}

func describe(field string, fe playground.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be >= %s (got %v)", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q check (got %v)", field, fe.Tag(), fe.Value())
	}
}
