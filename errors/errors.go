package errors

import "fmt"

// Message lifecycle
var (
	ErrValidation        = fmt.Errorf("validation failure")
	ErrInvalidRecipient  = fmt.Errorf("%w: cell phone number is incorrectly formatted or does not contain an international code", ErrValidation)
	ErrContentTooLong    = fmt.Errorf("%w: message exceeds 250 characters", ErrValidation)
	ErrNotFound          = fmt.Errorf("not found")
	ErrInvalidChoice     = fmt.Errorf("invalid option selected")
	ErrAlreadyClassified = fmt.Errorf("%w: message already classified", ErrInvalidChoice)
	ErrMessageFinalized  = fmt.Errorf("message is finalized")
	ErrEmptyQuery        = fmt.Errorf("no search terms have been found")
)

// Persistence. ErrPersistenceUnavailable never leaves the store: it only flags a LoadResult.
var (
	ErrPersistenceUnavailable = fmt.Errorf("persisted messages unavailable")
	ErrUnknownBackend         = fmt.Errorf("unknown storage backend")
)

// Authentication
var (
	ErrInvalidUsername    = fmt.Errorf("username is not correctly formatted, please ensure that your username contains an underscore and is no more than five characters in length")
	ErrInvalidPassword    = fmt.Errorf("password is not correctly formatted; please ensure that the password contains at least eight characters, a capital letter, a number, and a special character")
	ErrInvalidCellPhone   = fmt.Errorf("cell phone number incorrectly formatted or does not contain international code")
	ErrInvalidCredentials = fmt.Errorf("username or password incorrect, please try again")
	ErrTooManyAttempts    = fmt.Errorf("maximum login attempts exceeded")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)
