package domain

import (
	"fmt"
	"quickchat/errors"
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const MaxContentLength = 250

const readyToSend = "Message ready to send."

// A leading +, a 1 to 3 digit country code, then a 10 digit subscriber number.
var recipientPattern = regexp.MustCompile(`^\+\d{1,3}\d{10}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("recipient", func(fl validator.FieldLevel) bool {
		return recipientPattern.MatchString(fl.Field().String())
	})
	return v
}

// ComposeRequest holds the raw strings supplied by the shell.
type ComposeRequest struct {
	Recipient string `validate:"required,recipient"`
	Content   string `validate:"max=250"`
}

// IsValidRecipient reports whether value is an international cell number.
// Empty input counts as absent and is rejected.
func IsValidRecipient(value string) bool {
	return validate.Var(value, "required,recipient") == nil
}

// IsValidCellPhone applies the recipient rule to a registration phone number.
func IsValidCellPhone(value string) bool {
	return IsValidRecipient(value)
}

type LengthCheck struct {
	OK      bool
	Excess  int
	Message string
}

// CheckLength counts characters, not bytes. Nil content means nothing was supplied
// and is reported as exceeding by MaxContentLength.
func CheckLength(content *string) LengthCheck {
	if content == nil {
		return tooLong(MaxContentLength)
	}
	if n := utf8.RuneCountInString(*content); n > MaxContentLength {
		return tooLong(n - MaxContentLength)
	}
	return LengthCheck{OK: true, Message: readyToSend}
}

func tooLong(excess int) LengthCheck {
	return LengthCheck{
		Excess:  excess,
		Message: fmt.Sprintf("Message exceeds %d characters by %d, please reduce size.", MaxContentLength, excess),
	}
}

// ValidateCompose checks a whole request; failures wrap errors.ErrValidation.
func ValidateCompose(req ComposeRequest) error {
	if !IsValidRecipient(req.Recipient) {
		return errors.ErrInvalidRecipient
	}
	if check := CheckLength(&req.Content); !check.OK {
		return fmt.Errorf("%w: %s", errors.ErrContentTooLong, check.Message)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}
