// Package codegen mints the secrets embedded in scannable codes.
package codegen

import (
	"fmt"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/jaevor/go-nanoid"
)

const (
	securityTokenLength = 32
	ticketDigits        = 15
)

var (
	tokenGenerator  func() string
	digitsGenerator func() string
)

func init() {
	gen, err := nanoid.Standard(securityTokenLength)
	if err != nil {
		panic(fmt.Sprintf("nanoid generator: %v", err))
	}
	tokenGenerator = gen

	digits, err := nanoid.CustomASCII("0123456789", ticketDigits)
	if err != nil {
		panic(fmt.Sprintf("nanoid digits generator: %v", err))
	}
	digitsGenerator = digits
}

// SecurityToken returns a url-safe random token.
func SecurityToken() string {
	return tokenGenerator()
}

// TicketNumber returns 15 random digits followed by a Luhn check digit, so a
// number typed in by hand can be rejected before it reaches the store.
func TicketNumber() (string, error) {
	digits := []byte(digitsGenerator())
	if digits[0] == '0' {
		digits[0] = '1'
	}

	_, number, err := goluhn.Calculate(string(digits))
	if err != nil {
		return "", fmt.Errorf("calculate check digit: %w", err)
	}
	return number, nil
}
