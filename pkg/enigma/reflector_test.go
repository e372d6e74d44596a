package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/enigma/pkg/enigma"
)

func TestReflector_Forward(t *testing.T) {
	reflector := enigma.ReflectorByID("B")
	assert.Equal(t, 24, reflector.Forward(0))
	assert.Equal(t, 19, reflector.Forward(25))
}

func TestReflectorByID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		identity bool
	}{
		{"reflector B", "B", false},
		{"reflector C", "C", false},
		{"lowercase id is unknown", "b", true},
		{"unknown id", "A", true},
		{"empty id", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reflector := enigma.ReflectorByID(tt.id)
			fixed := 0
			for x := 0; x < enigma.Size; x++ {
				assert.Equal(t, x, reflector.Forward(reflector.Forward(x)))
				if reflector.Forward(x) == x {
					fixed++
				}
			}
			if tt.identity {
				assert.Equal(t, enigma.Size, fixed)
			} else {
				// a reflector never maps a letter onto itself
				assert.Equal(t, 0, fixed)
			}
		})
	}
}

func TestNewReflector(t *testing.T) {
	reflector := enigma.NewReflector([enigma.Size]int{
		5, 21, 15, 9, 8, 0, 14, 24, 4, 3, 17, 25, 23, 22, 6, 2, 19, 10, 20, 16, 18, 1, 13, 12, 7, 11,
	})
	assert.Equal(t, 5, reflector.Forward(0))
	assert.Equal(t, 0, reflector.Forward(5))
	assert.Equal(t, enigma.ReflectorByID("C"), reflector)
}

func TestReflector_C_Wiring(t *testing.T) {
	reflector := enigma.ReflectorByID("C")
	wiring := make([]byte, 0, enigma.Size)
	for x := 0; x < enigma.Size; x++ {
		wiring = append(wiring, enigma.Letter(reflector.Forward(x)))
	}
	assert.Equal(t, "FVPJIAOYEDRZXWGCTKUQSBNMHL", string(wiring))
	// B and V are wired to each other
	assert.Equal(t, 21, reflector.Forward(1))
	assert.Equal(t, 1, reflector.Forward(21))
}
