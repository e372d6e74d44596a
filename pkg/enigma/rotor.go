package enigma

type Rotor struct {
	wiring   *Wiring
	notches  [2]int
	position int
	setting  int
}

// NewRotor creates a rotor at the given position and ring setting.
// The wiring is shared and never modified by the rotor.
func NewRotor(wiring *Wiring, position, setting int) (*Rotor, error) {
	if position < 0 || position >= Size || setting < 0 || setting >= Size {
		return nil, ErrInvalidPosition
	}
	return &Rotor{
		wiring:   wiring,
		notches:  wiring.Notches,
		position: position,
		setting:  setting,
	}, nil
}

// RotorByIndex creates a rotor using the catalog wiring at the 0-based index.
func RotorByIndex(idx, position, setting int) (*Rotor, error) {
	wiring, err := CatalogWiring(idx)
	if err != nil {
		return nil, err
	}
	return NewRotor(&wiring, position, setting)
}

func (r *Rotor) Position() int {
	return r.position
}

// SetPosition turns the rotor to the given position, modulo 26.
func (r *Rotor) SetPosition(position int) {
	r.position = mod(position)
}

func (r *Rotor) Setting() int {
	return r.setting
}

func (r *Rotor) Notches() [2]int {
	return r.notches
}

// AtNotch reports whether the rotor sits at either of its notches.
func (r *Rotor) AtNotch() bool {
	return r.notches[0] == r.position || r.notches[1] == r.position
}

// Turnover advances the rotor by one position.
func (r *Rotor) Turnover() {
	r.position = (r.position + 1) % Size
}

func (r *Rotor) Forward(num int) int {
	return r.substitute(&r.wiring.Forward, num)
}

func (r *Rotor) Backward(num int) int {
	return r.substitute(&r.wiring.Backward, num)
}

func (r *Rotor) substitute(table *[Size]int, num int) int {
	shiftIn := Size + r.position - r.setting
	shiftOut := Size - r.position + r.setting
	x := (num + shiftIn) % Size
	return (table[x] + shiftOut) % Size
}

func mod(n int) int {
	n %= Size
	if n < 0 {
		n += Size
	}
	return n
}
