package auth

import (
	stderrors "errors"
	"quickchat/domain"
	"quickchat/errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return CheckUserName(fl.Field().String())
	})
	_ = v.RegisterValidation("complex", func(fl validator.FieldLevel) bool {
		return isPasswordComplex(fl.Field().String())
	})
	_ = v.RegisterValidation("cellphone", func(fl validator.FieldLevel) bool {
		return domain.IsValidCellPhone(fl.Field().String())
	})
	return v
}

type RegisterRequest struct {
	Username  string `validate:"required,username"`
	Password  string `validate:"required,min=8,complex"`
	CellPhone string `validate:"required,cellphone"`
	FirstName string
	LastName  string
}

// ValidateRegister reports every failing field, each as its own sentinel.
func ValidateRegister(req RegisterRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return err
	}
	var errs []error
	for _, fieldErr := range fieldErrors {
		switch fieldErr.Field() {
		case "Username":
			errs = append(errs, errors.ErrInvalidUsername)
		case "Password":
			errs = append(errs, errors.ErrInvalidPassword)
		case "CellPhone":
			errs = append(errs, errors.ErrInvalidCellPhone)
		}
	}
	return stderrors.Join(errs...)
}

// RegistrationStatus renders one line per field, in the order they are captured.
func RegistrationStatus(req RegisterRequest) string {
	err := ValidateRegister(req)
	lines := []string{
		fieldStatus(err, errors.ErrInvalidUsername, "Username successfully captured."),
		fieldStatus(err, errors.ErrInvalidPassword, "Password successfully captured."),
		fieldStatus(err, errors.ErrInvalidCellPhone, "Cell phone number successfully added."),
	}
	return strings.Join(lines, "\n")
}

func fieldStatus(err, fieldErr error, success string) string {
	if stderrors.Is(err, fieldErr) {
		return sentence(fieldErr)
	}
	return success
}

// sentence capitalizes the sentinel text and closes it with a period.
func sentence(err error) string {
	text := err.Error()
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:] + "."
}

// CheckUserName requires an underscore and at most five characters.
func CheckUserName(username string) bool {
	return len([]rune(username)) <= 5 && strings.Contains(username, "_")
}

// CheckPasswordComplexity requires eight characters, a capital letter, a digit and a special character.
func CheckPasswordComplexity(password string) bool {
	return len([]rune(password)) >= 8 && isPasswordComplex(password)
}

func CheckCellPhoneNumber(cellPhone string) bool {
	return domain.IsValidCellPhone(cellPhone)
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper   = false
		hasNumber  = false
		hasSpecial = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsDigit(char):
			hasNumber = true
		case !unicode.IsLetter(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasNumber && hasSpecial
}
