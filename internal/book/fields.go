package book

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// BirthdayLayout is the only accepted textual form of a birthday.
const BirthdayLayout = "02.01.2006"

var validate = validator.New()

// ValidationError reports a field value that failed its format rule.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Field, e.Reason, e.Value)
}

// Name is a validated, non-empty contact name.
type Name string

// Phone is a validated ten digit phone number.
type Phone string

// Birthday is a validated calendar date.
type Birthday struct {
	date time.Time
}

// ParseName rejects empty text; anything else is a valid name.
func ParseName(text string) (Name, error) {
	if err := validate.Var(text, "required"); err != nil {
		return "", &ValidationError{Field: "name", Value: text, Reason: "empty name"}
	}
	return Name(text), nil
}

// ParsePhone accepts exactly ten ASCII digits.
func ParsePhone(text string) (Phone, error) {
	if err := validate.Var(text, "len=10,number"); err != nil {
		return "", &ValidationError{Field: "phone", Value: text, Reason: "invalid phone format"}
	}
	return Phone(text), nil
}

// ParseBirthday accepts DD.MM.YYYY naming a date that exists.
func ParseBirthday(text string) (Birthday, error) {
	if err := validate.Var(text, "required,datetime="+BirthdayLayout); err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: text, Reason: "invalid date format"}
	}
	t, err := time.Parse(BirthdayLayout, text)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: text, Reason: "invalid date format"}
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday as midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
