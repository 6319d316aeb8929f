package primes

import (
	"math/big"

	"github.com/arekouzounian/rs-a/rsarand"
)

// PrimeBits is the bit-width of each RSA prime factor for the target
// 2048-bit modulus (spec: PRIME_BITS = 1024).
const PrimeBits = 1024

// maxDelta bounds the inner sieve-advance loop of generateSieve. It is
// chosen generously relative to SmallPrimeCount so that mods[i]+delta
// never approaches overflow for the int64 table entries used here (the
// concern the OpenSSL probable_prime recipe this is modeled on guards
// against for its narrower BN_ULONG mods table). Once delta exceeds
// this bound the candidate is abandoned and a fresh c is drawn.
const maxDelta = 1 << 20

// Variant selects the candidate-generation strategy used by Generate.
type Variant int

const (
	// Sieve trial-divides against the small-prime table and steps by
	// +2 deltas before ever invoking Miller-Rabin; the default and the
	// fastest in practice. This is the OpenSSL probable_prime recipe.
	Sieve Variant = iota
	// Random draws a fresh candidate of the target bit-width and
	// rejects outright on any Miller-Rabin failure, redrawing from
	// scratch rather than stepping locally.
	Random
	// LocalSearch draws once, then steps by +2 indefinitely (without a
	// small-prime pre-filter) until Miller-Rabin accepts. Faster than
	// Random but biases the resulting distribution toward primes that
	// follow short gaps.
	LocalSearch
)

// Generate returns a probable prime of exactly PrimeBits bits, using
// the given RNG, Miller-Rabin witness count, and generation variant.
func Generate(rng rsarand.Csprng, mrIterations int, variant Variant) *big.Int {
	switch variant {
	case Random:
		return generateRandom(rng, mrIterations)
	case LocalSearch:
		return generateLocalSearch(rng, mrIterations)
	default:
		return generateSieve(rng, mrIterations)
	}
}

// generateRandom implements the Random variant: draw fresh, reject and
// redraw wholesale on any Miller-Rabin failure.
func generateRandom(rng rsarand.Csprng, mrIterations int) *big.Int {
	iterations := 0
	for {
		iterations++
		c := drawOddCandidate(rng)
		if isProbablePrime(rng, c, mrIterations) {
			trace("total iterations necessary: %d", iterations)
			return c
		}
	}
}

// generateLocalSearch implements the LocalSearch variant: draw once,
// then step by +2 until a probable prime is found or the candidate
// drifts off the target bit-width, in which case redraw.
func generateLocalSearch(rng rsarand.Csprng, mrIterations int) *big.Int {
	for {
		c := drawOddCandidate(rng)
		for c.BitLen() == PrimeBits {
			if isProbablePrime(rng, c, mrIterations) {
				return c
			}
			c.Add(c, two)
		}
	}
}

// generateSieve implements the Sieve variant (spec.md §4.3): a
// trial-division pre-filter against the small-prime table, advanced by
// a running delta, followed by Miller-Rabin on survivors.
func generateSieve(rng rsarand.Csprng, mrIterations int) *big.Int {
	iterations := 0
restart:
	for {
		iterations++
		c := drawOddCandidate(rng)

		mods := make([]int64, SmallPrimeCount)
		for i := 0; i < SmallPrimeCount; i++ {
			m := new(big.Int).Mod(c, big.NewInt(smallPrimes[i]))
			mods[i] = m.Int64()
		}

		delta := int64(0)
		for {
			hitDivisor := false
			for i := 0; i < SmallPrimeCount; i++ {
				p := smallPrimes[i]
				if (mods[i]+delta)%p == 0 {
					hitDivisor = true
					break
				}
			}

			if !hitDivisor {
				break
			}

			delta += 2
			if delta > maxDelta {
				continue restart
			}
		}

		candidate := new(big.Int).Add(c, big.NewInt(delta))
		if candidate.BitLen() != PrimeBits {
			continue restart
		}

		if isProbablePrime(rng, candidate, mrIterations) {
			trace("total iterations necessary: %d", iterations)
			return candidate
		}
	}
}

// drawOddCandidate draws a PrimeBits-width value with the top bit
// forced (by DrawBits) and the low bit forced so the candidate is odd.
func drawOddCandidate(rng rsarand.Csprng) *big.Int {
	c := rng.DrawBits(PrimeBits)
	c.SetBit(c, 0, 1)
	return c
}

var (
	bigOne = big.NewInt(1)
	two    = big.NewInt(2)
)
