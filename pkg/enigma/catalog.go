package enigma

// NoNotch marks the unused notch slot of a single-notch rotor. It lies outside
// the alphabet, so a rotor position never matches it.
const NoNotch = 27

// RotorModel is a historical rotor wiring, given as the letters the contacts
// A through Z are wired to, together with its notch positions.
type RotorModel struct {
	Name     string
	Encoding string
	Notches  [2]int
}

// Catalog holds the eight rotors of the Wehrmacht and Kriegsmarine machines.
// Rotors I-V carry a single notch, VI-VIII carry two.
var Catalog = [8]RotorModel{
	{Name: "I", Encoding: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notches: [2]int{NoNotch, 16}},
	{Name: "II", Encoding: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notches: [2]int{NoNotch, 4}},
	{Name: "III", Encoding: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notches: [2]int{NoNotch, 21}},
	{Name: "IV", Encoding: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notches: [2]int{NoNotch, 9}},
	{Name: "V", Encoding: "VZBRGITYUPSDNHLXAWMJQOFECK", Notches: [2]int{NoNotch, 25}},
	{Name: "VI", Encoding: "JPGVOUMFYQBENHZRDKASXLICTW", Notches: [2]int{12, 25}},
	{Name: "VII", Encoding: "NZJHGRCXMYSWBOUFAIVLPEKQDT", Notches: [2]int{12, 25}},
	{Name: "VIII", Encoding: "FKQHTLXOCBJSPDZRAMEWNIUYGV", Notches: [2]int{12, 25}},
}

// Wiring is a rotor's substitution table and its inverse.
type Wiring struct {
	Forward  [Size]int
	Backward [Size]int
	Notches  [2]int
}

// NewWiring converts an encoding string into a wiring and precomputes the
// backward table.
func NewWiring(encoding string, notches [2]int) (Wiring, error) {
	var w Wiring
	if len(encoding) != Size {
		return w, ErrInvalidWiring
	}
	var seen [Size]bool
	for i := 0; i < Size; i++ {
		num, err := Code(encoding[i])
		if err != nil {
			return w, ErrInvalidWiring
		}
		if seen[num] {
			return w, ErrInvalidWiring
		}
		seen[num] = true
		w.Forward[i] = num
		w.Backward[num] = i
	}
	w.Notches = notches
	return w, nil
}

// CatalogWiring returns the wiring of the catalog rotor at the 0-based index.
func CatalogWiring(idx int) (Wiring, error) {
	if idx < 0 || idx >= len(Catalog) {
		return Wiring{}, ErrUnknownRotor
	}
	entry := Catalog[idx]
	return NewWiring(entry.Encoding, entry.Notches)
}
