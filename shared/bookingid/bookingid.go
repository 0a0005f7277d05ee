package bookingid

//go:generate go run go.uber.org/mock/mockgen -source=./bookingid.go -destination=./mocks/bookingid_mock.go -package=mocks

import (
	"math/rand/v2"
)

const (
	letters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits     = "0123456789"
	numLetters = 2
	numDigits  = 5
)

// Generator produces booking references: two uppercase letters followed by
// five digits, e.g. "QX30571". The space is small enough that collisions are
// a normal event; the caller detects them on insert and asks for a fresh
// code.
type Generator interface {
	Generate() string
}

type randomGenerator struct{}

func NewRandom() Generator {
	return &randomGenerator{}
}

func (g *randomGenerator) Generate() string {
	code := make([]byte, 0, numLetters+numDigits)

	for range numLetters {
		code = append(code, letters[rand.IntN(len(letters))])
	}

	for range numDigits {
		code = append(code, digits[rand.IntN(len(digits))])
	}

	return string(code)
}
