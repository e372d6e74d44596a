package machine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPlugboardDocument = errors.New("plugboard settings must be an object of letters")

// Pin is a plugboard cable as it was entered: the first letter is the key, the second one the value.
type Pin struct {
	From string `validate:"letter"`
	To   string `validate:"letter"`
}

// Plugboard keeps the pins in the order they were entered.
// The order matters for the machine once a letter is used by more than one pin.
type Plugboard []Pin

// Set plugs a cable under the key letter from.
// A key that is already plugged gets the new partner but keeps its place.
func (p Plugboard) Set(from, to string) Plugboard {
	for i := range p {
		if p[i].From == from {
			p[i].To = to
			return p
		}
	}
	return append(p, Pin{From: from, To: to})
}

func (p Plugboard) Get(from string) (string, bool) {
	for _, pin := range p {
		if pin.From == from {
			return pin.To, true
		}
	}
	return "", false
}

// String renders the pins the way they are given on the command line, e.g. AK,XP
func (p Plugboard) String() string {
	pins := make([]string, 0, len(p))
	for _, pin := range p {
		pins = append(pins, pin.From+pin.To)
	}
	return strings.Join(pins, ",")
}

// MarshalJSON encodes the pins as an object whose keys follow the pin order.
// An unplugged board is encoded as an empty object.
func (p Plugboard) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pin := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pin.From)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(pin.To)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object keys in document order.
// A repeated key updates the value of its first occurrence.
func (p *Plugboard) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrInvalidPlugboardDocument
	}
	board := make(Plugboard, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return ErrInvalidPlugboardDocument
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPlugboardDocument, err)
		}
		board = board.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = board
	return nil
}
