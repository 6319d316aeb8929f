package primes

import (
	"math/big"

	"github.com/arekouzounian/rs-a/rsarand"
)

// isProbablePrime runs the Miller-Rabin compositeness test with
// `iterations` independent witnesses drawn from rng. It returns false
// immediately for n == 0, n == 2 (treated as not a candidate per the
// algorithm's n > 2 precondition), and any even n.
func isProbablePrime(rng rsarand.Csprng, n *big.Int, iterations int) bool {
	if n.Sign() == 0 || n.Cmp(two) == 0 || n.Bit(0) == 0 {
		return false
	}
	three := big.NewInt(3)
	if n.Cmp(three) == 0 {
		return true
	}
	if n.Cmp(three) < 0 {
		return false
	}

	// n - 1 = 2^u * r, r odd.
	nMinusOne := new(big.Int).Sub(n, bigOne)
	r := new(big.Int).Set(nMinusOne)
	u := 0
	for r.Bit(0) == 0 {
		r.Rsh(r, 1)
		u++
	}

	for i := 0; i < iterations; i++ {
		if !millerRabinWitness(rng, n, nMinusOne, r, u) {
			return false
		}
	}
	return true
}

// millerRabinWitness draws one witness a in [2, n-1) and returns true
// if it is inconclusive (i.e. does not prove n composite).
func millerRabinWitness(rng rsarand.Csprng, n, nMinusOne, r *big.Int, u int) bool {
	a, err := rng.DrawRange(two, nMinusOne)
	if err != nil {
		// n - 1 <= 2 cannot happen: isProbablePrime already rejected
		// n <= 3, so n - 1 >= 3 > 2.
		panic("primes: unreachable draw_range failure in miller-rabin witness")
	}

	z := new(big.Int).Exp(a, r, n)
	if z.Cmp(bigOne) == 0 || z.Cmp(nMinusOne) == 0 {
		return true
	}

	for j := 0; j < u-1; j++ {
		z.Mul(z, z)
		z.Mod(z, n)
		if z.Cmp(nMinusOne) == 0 {
			return true
		}
	}

	return false
}
