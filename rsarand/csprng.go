// Package rsarand supplies the uniform random big-integer draws that
// prime generation and exponent search are built on.
//
// Two implementations are exported: CryptoSource, backed by
// crypto/rand, and InsecureDeterministicSource, backed by math/rand
// and intended for reproducible tests only. The two are distinct
// types so a caller can never mistake one for the other at a glance
// of a type signature or a godoc page.
package rsarand

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"

	"github.com/arekouzounian/rs-a/rsaerr"
)

// Csprng is a source of uniform random big integers. Implementations
// are not required to be safe for concurrent use by multiple
// goroutines; each key-generation call should own its source for the
// duration of the call.
type Csprng interface {
	// DrawBits returns a value in [0, 2^k) with bit k-1 forced to 1,
	// so the result always has exactly k bits.
	DrawBits(k int) *big.Int
	// DrawRange returns a value in [lo, hi). It fails only if hi <= lo.
	DrawRange(lo, hi *big.Int) (*big.Int, error)
}

// CryptoSource draws from crypto/rand.Reader. This is the default RNG
// used by KeyBuilder when none is supplied, and the only source that
// should be used to generate real keys.
type CryptoSource struct{}

// NewCryptoSource returns a Csprng backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

func (s *CryptoSource) DrawBits(k int) *big.Int {
	return drawBits(rand.Reader, k)
}

func (s *CryptoSource) DrawRange(lo, hi *big.Int) (*big.Int, error) {
	return drawRange(rand.Reader, lo, hi)
}

// InsecureDeterministicSource draws from a seeded math/rand generator.
// It reproduces the same stream of values for the same seed, which
// makes key generation fully reproducible for the end-to-end scenarios
// in the test suite. It must never be used to generate a key intended
// for real use: math/rand is not cryptographically secure.
type InsecureDeterministicSource struct {
	rng *mrand.Rand
}

// NewInsecureDeterministicSource returns a Csprng backed by a seeded
// math/rand generator. The name and the distinct return type are both
// deliberate: nothing here can be accidentally substituted for
// CryptoSource without the caller typing "Insecure".
func NewInsecureDeterministicSource(seed int64) *InsecureDeterministicSource {
	return &InsecureDeterministicSource{rng: mrand.New(mrand.NewSource(seed))}
}

func (s *InsecureDeterministicSource) DrawBits(k int) *big.Int {
	return drawBits(s.rng, k)
}

func (s *InsecureDeterministicSource) DrawRange(lo, hi *big.Int) (*big.Int, error) {
	return drawRange(s.rng, lo, hi)
}

// ioReader is the subset of io.Reader that both crypto/rand.Reader and
// *math/rand.Rand satisfy (the latter via math/rand.Rand.Read).
type ioReader interface {
	Read(p []byte) (n int, err error)
}

func drawBits(r ioReader, k int) *big.Int {
	if k <= 0 {
		return new(big.Int)
	}

	numBytes := (k + 7) / 8
	buf := make([]byte, numBytes)
	if _, err := r.Read(buf); err != nil {
		// A failure to read from either source here indicates the
		// process's entropy or PRNG state is broken beyond repair;
		// there is no meaningful fallback.
		panic(fmt.Sprintf("rsarand: failed to read random bytes: %s", err))
	}

	x := new(big.Int).SetBytes(buf)

	// Trim to exactly k bits, then force the top bit so the result is
	// always in [2^(k-1), 2^k).
	excess := numBytes*8 - k
	if excess > 0 {
		x.Rsh(x, uint(excess))
	}
	x.SetBit(x, k-1, 1)

	return x
}

func drawRange(r ioReader, lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) <= 0 {
		return nil, rsaerr.Options("draw_range: hi (%s) must be greater than lo (%s)", hi, lo)
	}

	span := new(big.Int).Sub(hi, lo)
	bitLen := span.BitLen()

	for {
		x := new(big.Int)
		numBytes := (bitLen + 7) / 8
		if numBytes == 0 {
			numBytes = 1
		}
		buf := make([]byte, numBytes)
		if _, err := r.Read(buf); err != nil {
			panic(fmt.Sprintf("rsarand: failed to read random bytes: %s", err))
		}
		x.SetBytes(buf)

		excess := numBytes*8 - bitLen
		if excess > 0 {
			x.Rsh(x, uint(excess))
		}

		if x.Cmp(span) < 0 {
			return x.Add(x, lo), nil
		}
		// Rejection sampling: redraw rather than reduce mod span, so
		// the result stays uniform over [lo, hi).
	}
}
