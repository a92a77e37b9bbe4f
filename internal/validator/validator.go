package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// DateTimeLayout is the wire format of screening start times.
const DateTimeLayout = "2006-01-02 15:04"

const (
	ErrRequired       = "is required"
	ErrInvalidSeat    = "must be a seat in \"row,column\" form"
	ErrInvalidName    = "must be 3 to 32 letters, digits, dots, dashes or underscores"
	ErrInvalidTime    = "must be a time in \"" + DateTimeLayout + "\" form"
	ErrDuplicateSeats = "must not contain the same seat twice"
	ErrDefaultInvalid = "is invalid"
)

var (
	// at most 15 characters, the seat column holds 16
	seatRgx     = regexp.MustCompile(`^[1-9][0-9]{0,6},[1-9][0-9]{0,6}$`)
	usernameRgx = regexp.MustCompile(`^[A-Za-z0-9._-]{3,32}$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat", validateSeat)
	validator.RegisterValidation("username", validateUsername)

	return validator
}

func validateSeat(fl validator.FieldLevel) bool {
	return seatRgx.MatchString(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "seat":
		return ErrInvalidSeat
	case "username":
		return ErrInvalidName
	case "datetime":
		return ErrInvalidTime
	case "unique":
		return ErrDuplicateSeats
	default:
		return ErrDefaultInvalid
	}
}
