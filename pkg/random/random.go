package random

import (
	crand "crypto/rand"
	"math/big"
)

// RandInt returns a uniformly distributed number in [min, max).
func RandInt(min, max int) int {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(max-min)))
	if err != nil {
		panic(err)
	}
	return int(n.Int64()) + min
}

// Sample returns n distinct numbers picked from [0, size) in random order.
func Sample(size, n int) []int {
	pool := make([]int, size)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < n; i++ {
		j := RandInt(i, size)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
