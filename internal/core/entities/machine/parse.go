package machine

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidNumberList = errors.New("must contain a comma separated list of integer values")
	ErrInvalidPlugboard  = errors.New("must contain comma separated pairs of letters")
)

// ParseNumbers parses a comma separated list such as "1,2,3".
func ParseNumbers(value string) ([]int, error) {
	items := strings.Split(value, ",")
	numbers := make([]int, 0, len(items))
	for _, item := range items {
		number, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			return nil, ErrInvalidNumberList
		}
		numbers = append(numbers, number)
	}
	return numbers, nil
}

// ParseRotors parses 1-based rotor numbers and returns 0-based catalog indices.
func ParseRotors(value string) ([]int, error) {
	numbers, err := ParseNumbers(value)
	if err != nil {
		return nil, err
	}
	for i := range numbers {
		numbers[i]--
	}
	return numbers, nil
}

// ParsePlugboard parses pins such as "AK,XP" keeping their order.
// The first letter of a pin is the key, the second one is the value.
// An empty string means an unplugged board.
func ParsePlugboard(value string) (Plugboard, error) {
	board := make(Plugboard, 0)
	if strings.TrimSpace(value) == "" {
		return board, nil
	}
	for _, pin := range strings.Split(value, ",") {
		pin = strings.TrimSpace(pin)
		if len(pin) != 2 {
			return nil, ErrInvalidPlugboard
		}
		board = board.Set(pin[:1], pin[1:])
	}
	return board, nil
}
