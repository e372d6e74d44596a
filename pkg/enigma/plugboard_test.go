package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/pkg/enigma"
)

func TestPlugboard_Forward(t *testing.T) {
	plugboard, err := enigma.NewPlugboard([]enigma.Pair{
		{From: 'A', To: 'F'},
		{From: 'B', To: 'Q'},
		{From: 'C', To: 'Z'},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, plugboard.Forward(0))
	assert.Equal(t, 0, plugboard.Forward(5))
	assert.Equal(t, 1, plugboard.Forward(16))
	assert.Equal(t, 25, plugboard.Forward(2))
	// unplugged letters are left alone
	assert.Equal(t, 3, plugboard.Forward(3))
}

func TestPlugboard_Involution(t *testing.T) {
	plugboard, err := enigma.NewPlugboard([]enigma.Pair{
		{From: 'B', To: 'Q'}, {From: 'C', To: 'R'}, {From: 'D', To: 'I'}, {From: 'E', To: 'J'},
		{From: 'K', To: 'W'}, {From: 'M', To: 'T'}, {From: 'O', To: 'S'}, {From: 'P', To: 'X'},
		{From: 'U', To: 'Z'}, {From: 'G', To: 'H'},
	})
	require.NoError(t, err)
	for x := 0; x < enigma.Size; x++ {
		assert.Equal(t, x, plugboard.Forward(plugboard.Forward(x)))
	}
}

func TestPlugboard_Empty(t *testing.T) {
	plugboard, err := enigma.NewPlugboard(nil)
	require.NoError(t, err)
	for x := 0; x < enigma.Size; x++ {
		assert.Equal(t, x, plugboard.Forward(x))
	}
}

func TestPlugboard_ReusedLetterLastWins(t *testing.T) {
	plugboard, err := enigma.NewPlugboard([]enigma.Pair{
		{From: 'A', To: 'B'},
		{From: 'A', To: 'C'},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, plugboard.Forward(0)) // A -> C
	assert.Equal(t, 0, plugboard.Forward(2)) // C -> A
	// B keeps its stale cable to A
	assert.Equal(t, 0, plugboard.Forward(1))
}

func TestPlugboard_InvalidLetter(t *testing.T) {
	tests := []struct {
		name string
		pair enigma.Pair
	}{
		{"lowercase from", enigma.Pair{From: 'a', To: 'B'}},
		{"digit to", enigma.Pair{From: 'A', To: '1'}},
		{"zero byte", enigma.Pair{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enigma.NewPlugboard([]enigma.Pair{tt.pair})
			assert.ErrorIs(t, err, enigma.ErrInvalidLetter)
		})
	}
}
