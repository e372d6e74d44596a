// Package enigma implements the three-rotor Enigma cipher machine:
// a plugboard, three rotors with ring settings and notches, and a reflector.
//
// An Enigma value is stateful. Every encrypted letter advances its rotors,
// so a machine must be rebuilt from its settings to decrypt what it has encrypted.
// It is not safe for concurrent use.
package enigma

import (
	"strings"
)

// Settings describes a machine. Rotor-indexed arrays are ordered left, middle, right.
type Settings struct {
	Rotors       [3]int // 0-based catalog indices
	Positions    [3]int
	RingSettings [3]int
	Plugboard    []Pair
	Reflector    string
}

type Enigma struct {
	plugboard Plugboard
	left      *Rotor
	middle    *Rotor
	right     *Rotor
	reflector Reflector
}

func New(plugboard Plugboard, left, middle, right *Rotor, reflector Reflector) *Enigma {
	return &Enigma{
		plugboard: plugboard,
		left:      left,
		middle:    middle,
		right:     right,
		reflector: reflector,
	}
}

// NewFromSettings assembles a machine from catalog rotors.
func NewFromSettings(s Settings) (*Enigma, error) {
	plugboard, err := NewPlugboard(s.Plugboard)
	if err != nil {
		return nil, err
	}
	var rotors [3]*Rotor
	for i := range rotors {
		rotor, rotorErr := RotorByIndex(s.Rotors[i], s.Positions[i], s.RingSettings[i])
		if rotorErr != nil {
			return nil, rotorErr
		}
		rotors[i] = rotor
	}
	return New(plugboard, rotors[0], rotors[1], rotors[2], ReflectorByID(s.Reflector)), nil
}

func (e *Enigma) Left() *Rotor {
	return e.left
}

func (e *Enigma) Middle() *Rotor {
	return e.middle
}

func (e *Enigma) Right() *Rotor {
	return e.right
}

// Positions returns the left, middle and right rotor positions.
func (e *Enigma) Positions() [3]int {
	return [3]int{e.left.position, e.middle.position, e.right.position}
}

// Step advances the rotors as a key press does.
// A middle rotor sitting at a notch steps itself and the left rotor (double stepping).
// A right rotor sitting at a notch steps the middle rotor.
// Both checks use the positions from before the key press,
// so the middle rotor may advance twice. The right rotor always steps once.
func (e *Enigma) Step() {
	middleAtNotch := e.middle.AtNotch()
	rightAtNotch := e.right.AtNotch()
	if middleAtNotch {
		e.middle.Turnover()
		e.left.Turnover()
	}
	if rightAtNotch {
		e.middle.Turnover()
	}
	e.right.Turnover()
}

// Encrypt steps the rotors and passes one uppercase letter through the machine.
// Encryption and decryption are the same operation.
// A byte outside A-Z is rejected with ErrInvalidLetter and leaves the rotors untouched.
func (e *Enigma) Encrypt(c byte) (byte, error) {
	num, err := Code(c)
	if err != nil {
		return 0, err
	}

	e.Step()

	num = e.plugboard.Forward(num)

	num = e.right.Forward(num)
	num = e.middle.Forward(num)
	num = e.left.Forward(num)

	num = e.reflector.Forward(num)

	num = e.left.Backward(num)
	num = e.middle.Backward(num)
	num = e.right.Backward(num)

	num = e.plugboard.Forward(num)

	return Letter(num), nil
}

// EncryptText encrypts the letters of text in order.
// It stops at the first letter outside A-Z; the rotors keep the state
// reached by the letters before it.
func (e *Enigma) EncryptText(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c, err := e.Encrypt(text[i])
		if err != nil {
			return "", err
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}
