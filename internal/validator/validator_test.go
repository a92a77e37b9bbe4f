package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingInput struct {
	Start string   `validate:"required,datetime=2006-01-02 15:04"`
	Seats []string `validate:"required,min=1,unique,dive,seat"`
}

type signUpInput struct {
	Username string `validate:"required,username"`
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   any
		wantTag string
		wantMsg string
	}{
		{name: "valid booking", input: bookingInput{Start: "2023-12-05 13:30", Seats: []string{"1,1", "10,12"}}},
		{name: "bad start time", input: bookingInput{Start: "2023-12-05T13:30", Seats: []string{"1,1"}},
			wantTag: "datetime", wantMsg: ErrInvalidTime},
		{name: "bad seat", input: bookingInput{Start: "2023-12-05 13:30", Seats: []string{"A1"}},
			wantTag: "seat", wantMsg: ErrInvalidSeat},
		{name: "zero row", input: bookingInput{Start: "2023-12-05 13:30", Seats: []string{"0,3"}},
			wantTag: "seat", wantMsg: ErrInvalidSeat},
		{name: "longest seat", input: bookingInput{Start: "2023-12-05 13:30", Seats: []string{"9999999,9999999"}}},
		{name: "seat too long", input: bookingInput{Start: "2023-12-05 13:30", Seats: []string{"10000000,1"}},
			wantTag: "seat", wantMsg: ErrInvalidSeat},
		{name: "duplicate seats", input: bookingInput{Start: "2023-12-05 13:30", Seats: []string{"1,1", "1,1"}},
			wantTag: "unique", wantMsg: ErrDuplicateSeats},
		{name: "valid username", input: signUpInput{Username: "sanyi_92"}},
		{name: "short username", input: signUpInput{Username: "ab"}, wantTag: "username", wantMsg: ErrInvalidName},
		{name: "missing username", input: signUpInput{}, wantTag: "required", wantMsg: ErrRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)

			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			require.NotEmpty(t, validationErrs)

			assert.Equal(t, tt.wantTag, validationErrs[0].Tag())
			assert.Equal(t, tt.wantMsg, ValidationMessage(validationErrs[0]))
		})
	}
}
