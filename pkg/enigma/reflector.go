package enigma

var (
	reflectorB = [Size]int{24, 17, 20, 7, 16, 18, 11, 3, 15, 23, 13, 6, 14, 10, 12, 8, 4, 1, 5, 25, 2, 22, 21, 9, 0, 19}
	// UKW-C, FVPJIAOYEDRZXWGCTKUQSBNMHL
	reflectorC = [Size]int{5, 21, 15, 9, 8, 0, 14, 24, 4, 3, 17, 25, 23, 22, 6, 2, 19, 10, 20, 16, 18, 1, 13, 12, 7, 11}
)

// ReflectorIDs lists the ids ReflectorByID knows about.
var ReflectorIDs = []string{"B", "C"}

type Reflector struct {
	mapping [Size]int
}

func NewReflector(mapping [Size]int) Reflector {
	return Reflector{mapping: mapping}
}

// ReflectorByID returns the wide B or C reflector.
// Any other id yields a pass-through reflector that maps every letter to itself.
func ReflectorByID(id string) Reflector {
	switch id {
	case "B":
		return NewReflector(reflectorB)
	case "C":
		return NewReflector(reflectorC)
	default:
		return NewReflector(identity())
	}
}

func (r Reflector) Forward(num int) int {
	return r.mapping[num]
}

func identity() [Size]int {
	var mapping [Size]int
	for i := range mapping {
		mapping[i] = i
	}
	return mapping
}
