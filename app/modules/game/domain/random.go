package gamedomain

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// EntropyFailure is the panic value raised when the secure generator
// cannot produce random bytes. Recovery layers must let it propagate:
// an unavailable entropy source is fatal to the process, not to a
// single call.
type EntropyFailure struct {
	Err error
}

func (e EntropyFailure) Error() string {
	return fmt.Sprintf("entropy source unavailable: %v", e.Err)
}

// Uniform returns an integer in [0, n) drawn from the platform's
// cryptographically secure generator. Elimination fairness is a trust
// property of the product, so this must never be swapped for a seeded
// PRNG.
func Uniform(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("Uniform: n must be positive, got %d", n))
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(EntropyFailure{Err: err})
	}
	return int(v.Int64())
}
