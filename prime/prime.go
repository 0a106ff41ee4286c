// Package prime finds primes whose binary and hexadecimal digit patterns
// satisfy a fixed set of structural constraints.
package prime

import (
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

var smallPrimes = generateSmallPrimes()

// generateSmallPrimes returns the primes below smallPrimeLimit in ascending order.
func generateSmallPrimes() []uint64 {
	var primes []uint64
	for n := uint64(2); n < smallPrimeLimit; n++ {
		if isSmallPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes
}

// isSmallPrime checks if a number is prime by trial division.
func isSmallPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for i := uint64(2); i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// IsPrime reports whether n is prime. The answer is exact below 2^64; above
// that the false-positive probability is at most 2^-128.
func IsPrime(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.IsUint64() {
		v := n.Uint64()
		if v < smallPrimeLimit {
			return isSmallPrime(v)
		}
		for _, p := range smallPrimes {
			if v%p == 0 {
				return false
			}
		}
		// Baillie-PSW alone is exact for inputs below 2^64.
		return n.ProbablyPrime(0)
	}
	var d, r big.Int
	for _, p := range smallPrimes {
		if r.Mod(n, d.SetUint64(p)).Sign() == 0 {
			return false
		}
	}
	return n.ProbablyPrime(MillerRabinRounds)
}

// NextPrime returns the smallest prime strictly greater than n. n is not modified.
func NextPrime(n *big.Int) *big.Int {
	if n.Cmp(two) < 0 {
		return big.NewInt(2)
	}
	next := new(big.Int).Add(n, one)
	if next.Bit(0) == 0 {
		next.Add(next, one)
	}
	for !IsPrime(next) {
		next.Add(next, two)
	}
	return next
}
