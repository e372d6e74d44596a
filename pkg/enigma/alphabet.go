package enigma

import (
	"errors"
)

// Size is the number of letters on the machine.
const Size = 26

var (
	ErrInvalidLetter   = errors.New("enigma: letter is outside A-Z")
	ErrInvalidWiring   = errors.New("enigma: wiring is not a permutation of A-Z")
	ErrUnknownRotor    = errors.New("enigma: unknown rotor")
	ErrInvalidPosition = errors.New("enigma: rotor position or ring setting is outside 0-25")
)

// Code converts an uppercase ASCII letter to its 0-25 code.
func Code(c byte) (int, error) {
	if c < 'A' || c > 'Z' {
		return 0, ErrInvalidLetter
	}
	return int(c - 'A'), nil
}

// Letter converts a 0-25 code back to an uppercase ASCII letter.
func Letter(num int) byte {
	return byte(num) + 'A'
}
