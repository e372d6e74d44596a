package enigma

// Pair is a plugboard cable connecting two letters.
type Pair struct {
	From byte
	To   byte
}

type Plugboard struct {
	mapping [Size]int
}

// NewPlugboard wires the given pairs in order, starting from an unplugged board.
// Letters are not checked for reuse: a later pair overwrites the slots of both
// of its letters, leaving the earlier partner as it was.
func NewPlugboard(pairs []Pair) (Plugboard, error) {
	mapping := identity()
	for _, pair := range pairs {
		from, err := Code(pair.From)
		if err != nil {
			return Plugboard{}, err
		}
		to, err := Code(pair.To)
		if err != nil {
			return Plugboard{}, err
		}
		mapping[from] = to
		mapping[to] = from
	}
	return Plugboard{mapping: mapping}, nil
}

func (p Plugboard) Forward(num int) int {
	return p.mapping[num]
}
